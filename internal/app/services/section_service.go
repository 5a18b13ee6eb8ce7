package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
	"github.com/dpetrov/campusreg/internal/pkg/timerange"
)

// SectionService handles course-section CRUD and meeting validation
type SectionService struct {
	sectionStore SectionStore
	courseStore  CourseStore
	regStore     RegistrationStore
	auditStore   AuditStore
	txRunner     TxRunner
}

// NewSectionService creates a new section service instance
func NewSectionService(
	sectionStore SectionStore,
	courseStore CourseStore,
	regStore RegistrationStore,
	auditStore AuditStore,
	txRunner TxRunner,
) *SectionService {
	return &SectionService{
		sectionStore: sectionStore,
		courseStore:  courseStore,
		regStore:     regStore,
		auditStore:   auditStore,
		txRunner:     txRunner,
	}
}

// validateSectionRequest checks instructor list, capacity and every meeting.
// One invalid meeting rejects the whole request.
func validateSectionRequest(req *dto.SectionRequest) error {
	if len(req.InstructorIDs) == 0 {
		return apperrors.NewValidationError("at least one instructor is required")
	}
	if req.Capacity < 1 {
		return apperrors.NewValidationError("capacity must be a positive integer")
	}
	if len(req.Meetings) == 0 {
		return apperrors.NewValidationError("at least one meeting is required")
	}

	for i, meeting := range req.Meetings {
		if len(meeting.DaysOfWeek) == 0 {
			return apperrors.NewValidationError(fmt.Sprintf("meeting %d has no days of week", i))
		}
		for _, day := range meeting.DaysOfWeek {
			if !day.IsValid() {
				return apperrors.NewValidationError(fmt.Sprintf("meeting %d has unknown day %q", i, day))
			}
		}
		if !timerange.IsValid(meeting.StartTime, meeting.EndTime) {
			return apperrors.ErrInvalidMeetingTime
		}
	}

	return nil
}

func meetingsFromInputs(inputs []dto.MeetingInput) []models.Meeting {
	meetings := make([]models.Meeting, len(inputs))
	for i, in := range inputs {
		meetings[i] = models.Meeting{
			DaysOfWeek: in.DaysOfWeek,
			StartTime:  in.StartTime,
			EndTime:    in.EndTime,
			Location:   in.Location,
		}
	}
	return meetings
}

// CreateSection validates and persists a new section under a course.
func (s *SectionService) CreateSection(ctx context.Context, actor *models.User, courseID string, req *dto.SectionRequest) (*models.CourseSection, error) {
	if err := validateSectionRequest(req); err != nil {
		return nil, err
	}

	// Reject unknown courses before opening the transaction
	if _, err := s.courseStore.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	section := &models.CourseSection{
		CourseID:      courseID,
		Capacity:      req.Capacity,
		InstructorIDs: req.InstructorIDs,
		Meetings:      meetingsFromInputs(req.Meetings),
		CreatedBy:     actor.ID,
	}

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.sectionStore.CreateTx(ctx, tx, section)
	})
	if err != nil {
		return nil, err
	}

	if err := s.auditStore.Append(ctx, models.AuditEntitySection, section.ID, actor.ID); err != nil {
		return nil, err
	}
	section.Updates, _ = s.auditStore.ListForEntity(ctx, models.AuditEntitySection, section.ID)

	return section, nil
}

// GetSection retrieves a section with instructors and its parent course.
func (s *SectionService) GetSection(ctx context.Context, id string) (*models.CourseSection, error) {
	section, err := s.sectionStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	instructors, err := s.sectionStore.ListInstructors(ctx, id)
	if err != nil {
		return nil, err
	}
	section.Instructors = instructors

	course, err := s.courseStore.GetByID(ctx, section.CourseID)
	if err == nil {
		section.Course = course
	}

	section.Updates, err = s.auditStore.ListForEntity(ctx, models.AuditEntitySection, id)
	if err != nil {
		return nil, err
	}

	return section, nil
}

// UpdateSection validates and replaces a section's capacity, meetings and
// instructors, appending to the update trail.
func (s *SectionService) UpdateSection(ctx context.Context, actor *models.User, sectionID string, req *dto.SectionRequest) (*models.CourseSection, error) {
	if err := validateSectionRequest(req); err != nil {
		return nil, err
	}

	section := &models.CourseSection{
		ID:            sectionID,
		Capacity:      req.Capacity,
		InstructorIDs: req.InstructorIDs,
		Meetings:      meetingsFromInputs(req.Meetings),
	}

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.sectionStore.ReplaceDetailsTx(ctx, tx, section)
	})
	if err != nil {
		return nil, err
	}

	if err := s.auditStore.Append(ctx, models.AuditEntitySection, section.ID, actor.ID); err != nil {
		return nil, err
	}
	section.Updates, _ = s.auditStore.ListForEntity(ctx, models.AuditEntitySection, section.ID)

	return section, nil
}

// DeleteSection removes a section and its registrations as a single
// transaction and reports what was removed.
func (s *SectionService) DeleteSection(ctx context.Context, id string) (*dto.DeleteSectionResponse, error) {
	result := &dto.DeleteSectionResponse{}

	err := s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error

		if err = s.auditStore.DeleteForSectionTx(ctx, tx, id); err != nil {
			return err
		}

		result.RegistrationsDeleted, err = s.regStore.DeleteBySectionTx(ctx, tx, id)
		if err != nil {
			return err
		}

		result.Section, err = s.sectionStore.DeleteTx(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
