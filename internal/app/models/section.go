package models

import "time"

// Meeting is one scheduled meeting block of a course section.
// Invariant: StartTime < EndTime, compared as times of day.
type Meeting struct {
	ID         string      `json:"id,omitempty" db:"id"`
	DaysOfWeek []DayOfWeek `json:"daysOfWeek" db:"days_of_week"`
	StartTime  string      `json:"startTime" db:"start_time"`
	EndTime    string      `json:"endTime" db:"end_time"`
	Location   string      `json:"location" db:"location"`
}

// CourseSection is one scheduled offering of a course, with its own
// instructors, meeting times and capacity.
type CourseSection struct {
	ID            string    `json:"id" db:"id"`
	CourseID      string    `json:"courseId" db:"course_id"`
	Capacity      int       `json:"capacity" db:"capacity"`
	InstructorIDs []string  `json:"instructorIds"`
	Meetings      []Meeting `json:"meetings"`
	CreatedBy     string    `json:"createdBy" db:"created_by"`
	CreatedOn     time.Time `json:"createdOn" db:"created_on"`

	// Relations (populated when needed)
	Instructors []*User      `json:"instructors,omitempty"`
	Course      *Course      `json:"course,omitempty"`
	Updates     []AuditEvent `json:"updates,omitempty"`
}
