package dto

import (
	"time"

	"github.com/dpetrov/campusreg/internal/app/models"
)

// CreateTermRequest carries the candidate term for creation. The same shape
// is used for updates, where every field is optional.
type CreateTermRequest struct {
	Season    models.Season `json:"season" binding:"required"`
	Year      int           `json:"year" binding:"required"`
	StartTime time.Time     `json:"startTime" binding:"required"`
	EndTime   time.Time     `json:"endTime" binding:"required"`
}

// UpdateTermRequest carries a partial term update; absent fields keep the
// stored value.
type UpdateTermRequest struct {
	Season    *models.Season `json:"season"`
	Year      *int           `json:"year"`
	StartTime *time.Time     `json:"startTime"`
	EndTime   *time.Time     `json:"endTime"`
}

// CreateCourseRequest carries a new course.
type CreateCourseRequest struct {
	Name        string            `json:"name" binding:"required"`
	TermID      string            `json:"termId" binding:"required"`
	Department  models.Department `json:"department" binding:"required"`
	Code        int               `json:"code" binding:"required"`
	Description string            `json:"description" binding:"required"`
}

// UpdateCourseRequest carries a partial course update.
type UpdateCourseRequest struct {
	Name        *string            `json:"name"`
	TermID      *string            `json:"termId"`
	Department  *models.Department `json:"department"`
	Code        *int               `json:"code"`
	Description *string            `json:"description"`
}

// MeetingInput is one meeting block in a section create/update request.
type MeetingInput struct {
	DaysOfWeek []models.DayOfWeek `json:"daysOfWeek" binding:"required"`
	StartTime  string             `json:"startTime" binding:"required"`
	EndTime    string             `json:"endTime" binding:"required"`
	Location   string             `json:"location" binding:"required"`
}

// SectionRequest carries a section create or full update.
type SectionRequest struct {
	InstructorIDs []string       `json:"instructorIds" binding:"required"`
	Capacity      int            `json:"capacity" binding:"required"`
	Meetings      []MeetingInput `json:"meetings" binding:"required"`
}

// UpdateRegistrationRequest toggles the priority flag of a registration.
type UpdateRegistrationRequest struct {
	Priority *bool `json:"priority" binding:"required"`
}

// CreateUserRequest carries a mock-user signup.
type CreateUserRequest struct {
	Email     string      `json:"email" binding:"required,email"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Role      models.Role `json:"role" binding:"required"`
}

// CreateTokenRequest carries a token issuance request.
type CreateTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}
