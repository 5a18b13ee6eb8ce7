package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

func validSectionRequest() *dto.SectionRequest {
	return &dto.SectionRequest{
		InstructorIDs: []string{"prof-1"},
		Capacity:      30,
		Meetings: []dto.MeetingInput{
			{
				DaysOfWeek: []models.DayOfWeek{models.Monday, models.Wednesday},
				StartTime:  "09:00:00",
				EndTime:    "10:30:00",
				Location:   "Hall A",
			},
		},
	}
}

func TestValidateSectionRequest(t *testing.T) {
	t.Run("accepts a well-formed request", func(t *testing.T) {
		assert.NoError(t, validateSectionRequest(validSectionRequest()))
	})

	t.Run("rejects empty instructor list", func(t *testing.T) {
		req := validSectionRequest()
		req.InstructorIDs = nil
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrValidationFailed)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		req := validSectionRequest()
		req.Capacity = 0
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrValidationFailed)
	})

	t.Run("rejects empty meeting list", func(t *testing.T) {
		req := validSectionRequest()
		req.Meetings = nil
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrValidationFailed)
	})

	t.Run("rejects meeting without days", func(t *testing.T) {
		req := validSectionRequest()
		req.Meetings[0].DaysOfWeek = nil
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrValidationFailed)
	})

	t.Run("rejects unknown day value", func(t *testing.T) {
		req := validSectionRequest()
		req.Meetings[0].DaysOfWeek = []models.DayOfWeek{"FUNDAY"}
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrValidationFailed)
	})

	t.Run("rejects inverted meeting time range", func(t *testing.T) {
		req := validSectionRequest()
		req.Meetings[0].StartTime = "11:00:00"
		req.Meetings[0].EndTime = "09:00:00"
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrInvalidMeetingTime)
	})

	t.Run("one bad meeting rejects the whole request", func(t *testing.T) {
		req := validSectionRequest()
		req.Meetings = append(req.Meetings, dto.MeetingInput{
			DaysOfWeek: []models.DayOfWeek{models.Friday},
			StartTime:  "14:00:00",
			EndTime:    "14:00:00",
			Location:   "Hall B",
		})
		assert.ErrorIs(t, validateSectionRequest(req), apperrors.ErrInvalidMeetingTime)
	})
}

func TestCreateSection(t *testing.T) {
	actor := &models.User{ID: "admin-1", Role: models.RoleAdministrator}

	t.Run("rejects unknown course before writing", func(t *testing.T) {
		sections := &fakeSectionStore{sections: map[string]*models.CourseSection{}}
		svc := NewSectionService(sections, &fakeCourseStore{}, &fakeRegistrationStore{}, &fakeAuditStore{}, &fakeTxRunner{})

		_, err := svc.CreateSection(context.Background(), actor, "missing", validSectionRequest())

		require.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.Empty(t, sections.sections)
	})

	t.Run("persists section and opens its update trail", func(t *testing.T) {
		sections := &fakeSectionStore{sections: map[string]*models.CourseSection{}}
		courses := &fakeCourseStore{courses: map[string]*models.Course{
			"c1": {ID: "c1"},
		}}
		audit := &fakeAuditStore{}
		svc := NewSectionService(sections, courses, &fakeRegistrationStore{}, audit, &fakeTxRunner{})

		section, err := svc.CreateSection(context.Background(), actor, "c1", validSectionRequest())

		require.NoError(t, err)
		assert.Equal(t, "c1", section.CourseID)
		assert.Equal(t, "admin-1", section.CreatedBy)
		require.Len(t, audit.events, 1)
		assert.Equal(t, models.AuditEntitySection, audit.events[0].EntityType)
		assert.Len(t, section.Updates, 1)
	})
}
