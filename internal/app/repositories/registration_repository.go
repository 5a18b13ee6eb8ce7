package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/dberrors"
)

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

const registrationJoinedColumns = `
	r.id, r.section_id, r.user_id, r.priority, r.created_at, r.registered_by,
	u.id, u.email, u.first_name, u.last_name, u.role, u.is_mock, u.created_at`

func scanRegistrationWithUser(row pgx.Row) (*models.Registration, error) {
	var reg models.Registration
	var user models.User
	err := row.Scan(
		&reg.ID,
		&reg.SectionID,
		&reg.UserID,
		&reg.Priority,
		&reg.CreatedAt,
		&reg.RegisteredBy,
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsMock,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	reg.User = &user
	return &reg, nil
}

// AcquireCourseLockTx serializes registration writes for one (user, course)
// pair for the duration of the transaction.
func (r *RegistrationRepository) AcquireCourseLockTx(ctx context.Context, tx pgx.Tx, userID, courseID string) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, userID+":"+courseID)
	if err != nil {
		return fmt.Errorf("error acquiring registration lock: %w", err)
	}
	return nil
}

// CountByUserAndCourseTx counts the user's registrations across every
// section of the given course.
func (r *RegistrationRepository) CountByUserAndCourseTx(ctx context.Context, tx pgx.Tx, userID, courseID string) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM registrations r
		JOIN course_sections s ON s.id = r.section_id
		WHERE r.user_id = $1 AND s.course_id = $2`, userID, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting registrations: %w", err)
	}
	return count, nil
}

// CreateTx inserts a registration and returns it with the joined user.
func (r *RegistrationRepository) CreateTx(ctx context.Context, tx pgx.Tx, reg *models.Registration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}

	err := tx.QueryRow(ctx, `
		INSERT INTO registrations (id, section_id, user_id, priority, registered_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		reg.ID, reg.SectionID, reg.UserID, reg.Priority, reg.RegisteredBy,
	).Scan(&reg.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSectionNotFound
		}
		return fmt.Errorf("error creating registration: %w", err)
	}

	return nil
}

// ListBySection retrieves a section's registrations with joined users,
// priority registrants first, ties broken by earliest registration.
func (r *RegistrationRepository) ListBySection(ctx context.Context, sectionID string) ([]*models.Registration, error) {
	query := `
		SELECT ` + registrationJoinedColumns + `
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		WHERE r.section_id = $1
		ORDER BY r.priority DESC, r.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error querying registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]*models.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistrationWithUser(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// SetPriority updates the priority flag and returns the record with the
// joined user.
func (r *RegistrationRepository) SetPriority(ctx context.Context, id string, priority bool) (*models.Registration, error) {
	query := `
		WITH updated AS (
			UPDATE registrations SET priority = $1 WHERE id = $2
			RETURNING id, section_id, user_id, priority, created_at, registered_by
		)
		SELECT ` + registrationJoinedColumns + `
		FROM updated r
		JOIN users u ON u.id = r.user_id
	`

	reg, err := scanRegistrationWithUser(r.db.QueryRow(ctx, query, priority, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error updating registration: %w", err)
	}

	return reg, nil
}

// DeleteByUserAndSection removes the caller's registrations on a section
// and reports how many were removed (0 or 1 in practice).
func (r *RegistrationRepository) DeleteByUserAndSection(ctx context.Context, userID, sectionID string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM registrations
		WHERE user_id = $1 AND section_id = $2`, userID, sectionID)
	if err != nil {
		return 0, fmt.Errorf("error deleting registrations: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteBySectionTx removes all registrations of one section.
func (r *RegistrationRepository) DeleteBySectionTx(ctx context.Context, tx pgx.Tx, sectionID string) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM registrations WHERE section_id = $1`, sectionID)
	if err != nil {
		return 0, fmt.Errorf("error deleting registrations: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// DeleteByCourseTx removes all registrations under any section of a course.
func (r *RegistrationRepository) DeleteByCourseTx(ctx context.Context, tx pgx.Tx, courseID string) (int64, error) {
	cmdTag, err := tx.Exec(ctx, `
		DELETE FROM registrations
		WHERE section_id IN (SELECT id FROM course_sections WHERE course_id = $1)`, courseID)
	if err != nil {
		return 0, fmt.Errorf("error deleting registrations: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
