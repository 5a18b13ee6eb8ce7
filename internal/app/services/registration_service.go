package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

// RegistrationService handles self-service registration, deregistration,
// priority updates and roster computation
type RegistrationService struct {
	regStore     RegistrationStore
	sectionStore SectionStore
	txRunner     TxRunner
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(regStore RegistrationStore, sectionStore SectionStore, txRunner TxRunner) *RegistrationService {
	return &RegistrationService{
		regStore:     regStore,
		sectionStore: sectionStore,
		txRunner:     txRunner,
	}
}

// Register creates a registration for the caller on a section. A user may
// hold at most one registration across all sections of the same course; the
// check and insert run in one transaction under an advisory lock keyed on
// (user, course), so two concurrent requests cannot both pass the check.
func (s *RegistrationService) Register(ctx context.Context, caller *models.User, sectionID string) (*models.Registration, error) {
	section, err := s.sectionStore.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	reg := &models.Registration{
		SectionID:    sectionID,
		UserID:       caller.ID,
		RegisteredBy: caller.ID,
	}

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.regStore.AcquireCourseLockTx(ctx, tx, caller.ID, section.CourseID); err != nil {
			return err
		}

		count, err := s.regStore.CountByUserAndCourseTx(ctx, tx, caller.ID, section.CourseID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrAlreadyRegistered
		}

		return s.regStore.CreateTx(ctx, tx, reg)
	})
	if err != nil {
		return nil, err
	}

	reg.User = caller
	return reg, nil
}

// Deregister removes the caller's registration on a section and reports the
// number of removed records (0 or 1).
func (s *RegistrationService) Deregister(ctx context.Context, caller *models.User, sectionID string) (int64, error) {
	return s.regStore.DeleteByUserAndSection(ctx, caller.ID, sectionID)
}

// SetPriority toggles the priority flag of one registration.
func (s *RegistrationService) SetPriority(ctx context.Context, registrationID string, priority bool) (*models.Registration, error) {
	return s.regStore.SetPriority(ctx, registrationID, priority)
}

// GetRoster computes a section's roster: registrations ordered by priority
// then registration time, split at the section's capacity.
func (s *RegistrationService) GetRoster(ctx context.Context, sectionID string) (*models.Roster, error) {
	section, err := s.sectionStore.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	registrations, err := s.regStore.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	return SplitRoster(registrations, section.Capacity), nil
}

// SplitRoster splits an ordered registration list at capacity. The input
// must already be sorted by priority descending, then creation time
// ascending. Enrollment is derived here at read time; nothing is persisted.
func SplitRoster(ordered []*models.Registration, capacity int) *models.Roster {
	if capacity < 0 {
		capacity = 0
	}
	cut := capacity
	if cut > len(ordered) {
		cut = len(ordered)
	}

	roster := &models.Roster{
		Students: make([]*models.Registration, 0, cut),
		Waitlist: make([]*models.Registration, 0, len(ordered)-cut),
	}
	roster.Students = append(roster.Students, ordered[:cut]...)
	roster.Waitlist = append(roster.Waitlist, ordered[cut:]...)
	return roster
}
