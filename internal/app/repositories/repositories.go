package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TermRepository         *TermRepository
	CourseRepository       *CourseRepository
	SectionRepository      *SectionRepository
	RegistrationRepository *RegistrationRepository
	AuditRepository        *AuditRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TermRepository:         NewTermRepository(db),
		CourseRepository:       NewCourseRepository(db),
		SectionRepository:      NewSectionRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		AuditRepository:        NewAuditRepository(db),
	}
}
