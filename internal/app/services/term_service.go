package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// TermBoundaryPolicyInclusive: the overlap test is inclusive at both
// interval ends. An existing term ending at the exact instant a candidate
// starts counts as a conflict; back-to-back terms must not share a boundary
// instant.
const TermBoundaryPolicyInclusive = true

// TermService handles term CRUD and overlap conflict checking
type TermService struct {
	termStore TermStore
}

// NewTermService creates a new term service instance
func NewTermService(termStore TermStore) *TermService {
	return &TermService{
		termStore: termStore,
	}
}

// validateInterval rejects candidates whose start does not strictly precede
// their end.
func validateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return apperrors.ErrTermOrdering
	}
	return nil
}

// checkConflicts rejects the candidate interval when any existing term
// overlaps it. excludeID skips the term being updated.
func (s *TermService) checkConflicts(ctx context.Context, start, end time.Time, excludeID string) error {
	existing, err := s.termStore.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading terms for conflict check: %w", err)
	}

	for _, term := range existing {
		if term.ID == excludeID {
			continue
		}
		if term.Overlaps(start, end) {
			return apperrors.ErrTermConflict
		}
	}

	return nil
}

// CreateTerm validates interval ordering and overlap, then persists the term.
// No write happens when validation fails.
func (s *TermService) CreateTerm(ctx context.Context, req *dto.CreateTermRequest) (*models.Term, error) {
	if !req.Season.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown season %q", req.Season))
	}
	if req.Year < 1000 || req.Year > 9999 {
		return nil, apperrors.NewValidationError("year must be a four-digit number")
	}
	if err := validateInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, req.StartTime, req.EndTime, ""); err != nil {
		return nil, err
	}

	term := &models.Term{
		Season:    req.Season,
		Year:      req.Year,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.termStore.Create(ctx, term); err != nil {
		return nil, err
	}

	return term, nil
}

// UpdateTerm merges the partial candidate over the stored term, re-validates
// ordering and overlap (excluding the term itself) and persists.
func (s *TermService) UpdateTerm(ctx context.Context, id string, req *dto.UpdateTermRequest) (*models.Term, error) {
	term, err := s.termStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Season != nil {
		if !req.Season.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown season %q", *req.Season))
		}
		term.Season = *req.Season
	}
	if req.Year != nil {
		term.Year = *req.Year
	}
	if req.StartTime != nil {
		term.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		term.EndTime = *req.EndTime
	}

	if err := validateInterval(term.StartTime, term.EndTime); err != nil {
		return nil, err
	}
	if err := s.checkConflicts(ctx, term.StartTime, term.EndTime, term.ID); err != nil {
		return nil, err
	}

	if err := s.termStore.Update(ctx, term); err != nil {
		return nil, err
	}

	return term, nil
}

// GetAllTerms retrieves all terms, most recent start first
func (s *TermService) GetAllTerms(ctx context.Context) ([]*models.Term, error) {
	return s.termStore.GetAll(ctx)
}

// GetTermByID retrieves one term
func (s *TermService) GetTermByID(ctx context.Context, id string) (*models.Term, error) {
	return s.termStore.GetByID(ctx, id)
}

// GetCurrentTerm retrieves the term containing the current instant,
// exclusive at both boundaries.
func (s *TermService) GetCurrentTerm(ctx context.Context) (*models.Term, error) {
	return s.termStore.GetCurrent(ctx, time.Now())
}

// DeleteTerm removes a term and returns the deleted record
func (s *TermService) DeleteTerm(ctx context.Context, id string) (*models.Term, error) {
	return s.termStore.Delete(ctx, id)
}
