package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/db"
)

// Storage capabilities the services depend on. The pgx repositories in
// internal/app/repositories implement them; tests substitute fakes.

// TxRunner runs a function within a database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// UserStore is the storage capability for users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) ([]*models.User, error)
}

// TermStore is the storage capability for terms.
type TermStore interface {
	Create(ctx context.Context, term *models.Term) error
	GetByID(ctx context.Context, id string) (*models.Term, error)
	GetAll(ctx context.Context) ([]*models.Term, error)
	GetCurrent(ctx context.Context, now time.Time) (*models.Term, error)
	Update(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, id string) (*models.Term, error)
}

// CourseStore is the storage capability for courses.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	Search(ctx context.Context, terms []string, termID string, dept models.Department) ([]*models.Course, error)
	Update(ctx context.Context, id string, patch *models.Course) (*models.Course, error)
	DeleteTx(ctx context.Context, tx pgx.Tx, id string) (*models.Course, error)
}

// SectionStore is the storage capability for course sections.
type SectionStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, section *models.CourseSection) error
	ReplaceDetailsTx(ctx context.Context, tx pgx.Tx, section *models.CourseSection) error
	GetByID(ctx context.Context, id string) (*models.CourseSection, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.CourseSection, error)
	ListInstructors(ctx context.Context, sectionID string) ([]*models.User, error)
	DeleteTx(ctx context.Context, tx pgx.Tx, id string) (*models.CourseSection, error)
	DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID string) (int64, error)
}

// RegistrationStore is the storage capability for registrations.
type RegistrationStore interface {
	AcquireCourseLockTx(ctx context.Context, tx pgx.Tx, userID, courseID string) error
	CountByUserAndCourseTx(ctx context.Context, tx pgx.Tx, userID, courseID string) (int64, error)
	CreateTx(ctx context.Context, tx pgx.Tx, reg *models.Registration) error
	ListBySection(ctx context.Context, sectionID string) ([]*models.Registration, error)
	SetPriority(ctx context.Context, id string, priority bool) (*models.Registration, error)
	DeleteByUserAndSection(ctx context.Context, userID, sectionID string) (int64, error)
	DeleteBySectionTx(ctx context.Context, tx pgx.Tx, sectionID string) (int64, error)
	DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID string) (int64, error)
}

// AuditStore is the storage capability for entity update trails.
type AuditStore interface {
	Append(ctx context.Context, entity models.AuditEntity, entityID, actorID string) error
	ListForEntity(ctx context.Context, entity models.AuditEntity, entityID string) ([]models.AuditEvent, error)
	DeleteForCourseTx(ctx context.Context, tx pgx.Tx, courseID string) error
	DeleteForSectionTx(ctx context.Context, tx pgx.Tx, sectionID string) error
}
