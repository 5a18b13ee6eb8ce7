package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        string    `json:"id" db:"id" example:"24f6c9f1-8f5e-4f0a-9a1d-6c1f62c1a001"` // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"user@school.edu"`                // User's email address (unique)
	FirstName string    `json:"firstName" db:"first_name" example:"John"`                  // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`                     // User's last name
	Role      Role      `json:"role" db:"role" example:"STUDENT"`                          // User's role (STUDENT, PROFESSOR or ADMINISTRATOR)
	IsMock    bool      `json:"isMock" db:"is_mock" example:"true"`                        // True for accounts created through self-service signup
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`  // Timestamp when the user was created
}
