package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/dberrors"
)

// TermRepository handles database operations for terms
type TermRepository struct {
	db *pgxpool.Pool
}

// NewTermRepository creates a new term repository
func NewTermRepository(db *pgxpool.Pool) *TermRepository {
	return &TermRepository{
		db: db,
	}
}

// Create inserts a new term
func (r *TermRepository) Create(ctx context.Context, term *models.Term) error {
	if term.ID == "" {
		term.ID = uuid.NewString()
	}

	query := `
		INSERT INTO terms (id, season, year, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, term.ID, term.Season, term.Year, term.StartTime, term.EndTime)
	if err != nil {
		return fmt.Errorf("error creating term: %w", err)
	}

	return nil
}

// GetByID retrieves a term by ID
func (r *TermRepository) GetByID(ctx context.Context, id string) (*models.Term, error) {
	query := `
		SELECT id, season, year, start_time, end_time
		FROM terms
		WHERE id = $1
	`

	var term models.Term
	err := r.db.QueryRow(ctx, query, id).Scan(
		&term.ID,
		&term.Season,
		&term.Year,
		&term.StartTime,
		&term.EndTime,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("error retrieving term: %w", err)
	}

	return &term, nil
}

// GetAll retrieves all terms in descending order of start times
func (r *TermRepository) GetAll(ctx context.Context) ([]*models.Term, error) {
	query := `
		SELECT id, season, year, start_time, end_time
		FROM terms
		ORDER BY start_time DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying terms: %w", err)
	}
	defer rows.Close()

	terms := make([]*models.Term, 0)
	for rows.Next() {
		var term models.Term
		if err := rows.Scan(
			&term.ID,
			&term.Season,
			&term.Year,
			&term.StartTime,
			&term.EndTime,
		); err != nil {
			return nil, err
		}
		terms = append(terms, &term)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return terms, nil
}

// GetCurrent retrieves the term whose interval strictly contains the given
// instant.
func (r *TermRepository) GetCurrent(ctx context.Context, now time.Time) (*models.Term, error) {
	query := `
		SELECT id, season, year, start_time, end_time
		FROM terms
		WHERE start_time < $1 AND end_time > $1
		ORDER BY start_time
		LIMIT 1
	`

	var term models.Term
	err := r.db.QueryRow(ctx, query, now).Scan(
		&term.ID,
		&term.Season,
		&term.Year,
		&term.StartTime,
		&term.EndTime,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrNoCurrentTerm
		}
		return nil, fmt.Errorf("error retrieving current term: %w", err)
	}

	return &term, nil
}

// Update persists a full term record
func (r *TermRepository) Update(ctx context.Context, term *models.Term) error {
	query := `
		UPDATE terms
		SET season = $1, year = $2, start_time = $3, end_time = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		term.Season, term.Year, term.StartTime, term.EndTime, term.ID)
	if err != nil {
		return fmt.Errorf("error updating term: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTermNotFound
	}

	return nil
}

// Delete removes a term and returns the deleted record
func (r *TermRepository) Delete(ctx context.Context, id string) (*models.Term, error) {
	query := `
		DELETE FROM terms
		WHERE id = $1
		RETURNING id, season, year, start_time, end_time
	`

	var term models.Term
	err := r.db.QueryRow(ctx, query, id).Scan(
		&term.ID,
		&term.Season,
		&term.Year,
		&term.StartTime,
		&term.EndTime,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("error deleting term: %w", err)
	}

	return &term, nil
}
