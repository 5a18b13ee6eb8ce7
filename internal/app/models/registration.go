package models

import "time"

// Registration links a user to a course section. A user may hold at most one
// registration across all sections of the same course.
type Registration struct {
	ID           string    `json:"id" db:"id"`
	SectionID    string    `json:"sectionId" db:"section_id"`
	UserID       string    `json:"userId" db:"user_id"`
	Priority     bool      `json:"priority" db:"priority"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	RegisteredBy string    `json:"registeredBy" db:"registered_by"`

	// Relation (populated when needed)
	User *User `json:"user,omitempty"`
}

// Roster is the derived split of a section's registrations into enrolled
// students and the waitlist, computed at read time.
type Roster struct {
	Students []*Registration `json:"students"`
	Waitlist []*Registration `json:"waitlist"`
}
