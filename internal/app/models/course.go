package models

import "time"

// Course represents a course offered in a term.
type Course struct {
	ID          string     `json:"id" db:"id"`
	TermID      string     `json:"termId" db:"term_id"`
	Department  Department `json:"department" db:"department"`
	Code        int        `json:"code" db:"code"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	CreatedBy   string     `json:"createdBy" db:"created_by"`
	CreatedOn   time.Time  `json:"createdOn" db:"created_on"`

	// Relations (populated when needed)
	Term     *Term           `json:"term,omitempty"`
	Sections []*CourseSection `json:"sections,omitempty"`
	Updates  []AuditEvent     `json:"updates,omitempty"`
}
