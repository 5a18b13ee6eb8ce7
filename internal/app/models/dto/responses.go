package dto

import "github.com/dpetrov/campusreg/internal/app/models"

// Option is one display-label/value pair in the options catalog.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OptionsResponse is the static enumeration catalog served at /options.
type OptionsResponse struct {
	Roles       []Option `json:"roles"`
	Departments []Option `json:"departments"`
	DaysOfWeek  []Option `json:"daysOfWeek"`
	Seasons     []Option `json:"seasons"`
}

// DeleteTermResponse is returned when a term is deleted.
type DeleteTermResponse struct {
	Message string       `json:"message"`
	Term    *models.Term `json:"term"`
}

// DeleteCourseResponse is the composite result of the course deletion
// cascade: registration and section counts plus the removed course record.
type DeleteCourseResponse struct {
	RegistrationsDeleted int64          `json:"registrationsDeleted"`
	SectionsDeleted      int64          `json:"sectionsDeleted"`
	Course               *models.Course `json:"course"`
}

// DeleteSectionResponse is the composite result of the section deletion
// cascade.
type DeleteSectionResponse struct {
	RegistrationsDeleted int64                 `json:"registrationsDeleted"`
	Section              *models.CourseSection `json:"section"`
}

// DeleteCountResponse reports how many rows a bulk delete removed.
type DeleteCountResponse struct {
	Count int64 `json:"count"`
}
