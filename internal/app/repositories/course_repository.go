package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `id, term_id, department, code, name, description, created_by, created_on`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.TermID,
		&course.Department,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.CreatedBy,
		&course.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	query := `
		INSERT INTO courses (id, term_id, department, code, name, description, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_on
	`

	err := r.db.QueryRow(ctx, query,
		course.ID, course.TermID, course.Department, course.Code,
		course.Name, course.Description, course.CreatedBy,
	).Scan(&course.CreatedOn)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTermNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID without relations
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// Search retrieves courses matching every free-text term against name or
// description (case-insensitive), optionally filtered by term and
// department.
func (r *CourseRepository) Search(ctx context.Context, terms []string, termID string, dept models.Department) ([]*models.Course, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + courseColumns + ` FROM courses WHERE TRUE`)

	args := make([]interface{}, 0, len(terms)+2)
	for _, term := range terms {
		args = append(args, "%"+term+"%")
		idx := len(args)
		fmt.Fprintf(&sb, " AND (name ILIKE $%d OR description ILIKE $%d)", idx, idx)
	}

	if termID != "" {
		args = append(args, termID)
		fmt.Fprintf(&sb, " AND term_id = $%d", len(args))
	}

	if dept != "" {
		args = append(args, dept)
		fmt.Fprintf(&sb, " AND department = $%d", len(args))
	}

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update applies a partial update; nil fields keep the stored value.
func (r *CourseRepository) Update(ctx context.Context, id string, patch *models.Course) (*models.Course, error) {
	query := `
		UPDATE courses
		SET term_id = COALESCE(NULLIF($1, ''), term_id),
		    department = COALESCE(NULLIF($2, '')::text, department),
		    code = COALESCE($3, code),
		    name = COALESCE(NULLIF($4, ''), name),
		    description = COALESCE($5, description)
		WHERE id = $6
		RETURNING ` + courseColumns

	var code *int
	if patch.Code != 0 {
		code = &patch.Code
	}
	var description *string
	if patch.Description != "" {
		description = &patch.Description
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query,
		patch.TermID, string(patch.Department), code, patch.Name, description, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// DeleteTx removes a course inside a transaction and returns the record.
func (r *CourseRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id string) (*models.Course, error) {
	query := `DELETE FROM courses WHERE id = $1 RETURNING ` + courseColumns

	course, err := scanCourse(tx.QueryRow(ctx, query, id))
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}

	return course, nil
}
