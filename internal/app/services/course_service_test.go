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

func newCourseService(courses *fakeCourseStore, sections *fakeSectionStore, regs *fakeRegistrationStore) (*CourseService, *fakeAuditStore, *fakeTxRunner) {
	audit := &fakeAuditStore{}
	tx := &fakeTxRunner{}
	svc := NewCourseService(courses, sections, regs, audit, &fakeTermStore{}, tx)
	return svc, audit, tx
}

func TestCreateCourse(t *testing.T) {
	actor := &models.User{ID: "admin-1", Role: models.RoleAdministrator}

	t.Run("stamps the creator and opens the update trail", func(t *testing.T) {
		courses := &fakeCourseStore{}
		svc, audit, _ := newCourseService(courses, &fakeSectionStore{}, &fakeRegistrationStore{})

		course, err := svc.CreateCourse(context.Background(), actor, &dto.CreateCourseRequest{
			Name:        "Algorithms",
			TermID:      "t1",
			Department:  models.DeptComputerSci,
			Code:        3510,
			Description: "Design and analysis of algorithms",
		})

		require.NoError(t, err)
		assert.Equal(t, "admin-1", course.CreatedBy)
		require.Len(t, audit.events, 1)
		assert.Equal(t, models.AuditEntityCourse, audit.events[0].EntityType)
	})

	t.Run("rejects unknown department", func(t *testing.T) {
		courses := &fakeCourseStore{}
		svc, _, _ := newCourseService(courses, &fakeSectionStore{}, &fakeRegistrationStore{})

		_, err := svc.CreateCourse(context.Background(), actor, &dto.CreateCourseRequest{
			Name:        "Alchemy",
			TermID:      "t1",
			Department:  "ALCHEMY",
			Code:        100,
			Description: "Transmutation basics",
		})

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Empty(t, courses.creates)
	})
}

func TestSearchCourses(t *testing.T) {
	svc, _, _ := newCourseService(&fakeCourseStore{}, &fakeSectionStore{}, &fakeRegistrationStore{})

	t.Run("requires at least one search term", func(t *testing.T) {
		_, err := svc.SearchCourses(context.Background(), nil, "", "")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects unknown department filter", func(t *testing.T) {
		_, err := svc.SearchCourses(context.Background(), []string{"algo"}, "", "BASKETWEAVING")
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("empty department filter is allowed", func(t *testing.T) {
		_, err := svc.SearchCourses(context.Background(), []string{"algo"}, "", "")
		assert.NoError(t, err)
	})
}

func TestDeleteCourse(t *testing.T) {
	courses := &fakeCourseStore{courses: map[string]*models.Course{
		"c1": {ID: "c1", Name: "Algorithms"},
	}}
	sections := &fakeSectionStore{sections: map[string]*models.CourseSection{
		"s1": {ID: "s1", CourseID: "c1"},
		"s2": {ID: "s2", CourseID: "c1"},
		"sx": {ID: "sx", CourseID: "other"},
	}}
	regs := &fakeRegistrationStore{
		sectionCourse: map[string]string{"s1": "c1", "s2": "c1", "sx": "other"},
		registrations: []*models.Registration{
			{ID: "r1", SectionID: "s1", UserID: "u1"},
			{ID: "r2", SectionID: "s2", UserID: "u2"},
			{ID: "r3", SectionID: "sx", UserID: "u3"},
		},
	}
	svc, _, tx := newCourseService(courses, sections, regs)

	result, err := svc.DeleteCourse(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.RegistrationsDeleted)
	assert.Equal(t, int64(2), result.SectionsDeleted)
	assert.Equal(t, "c1", result.Course.ID)
	assert.Equal(t, 1, tx.calls)

	// Unrelated course data survives the cascade.
	assert.Len(t, regs.registrations, 1)
	assert.Contains(t, sections.sections, "sx")
}
