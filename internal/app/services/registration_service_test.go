package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

func TestRegister(t *testing.T) {
	caller := &models.User{ID: "u1", Role: models.RoleStudent}

	newStores := func() (*fakeRegistrationStore, *fakeSectionStore) {
		sections := &fakeSectionStore{sections: map[string]*models.CourseSection{
			"s1": {ID: "s1", CourseID: "c1", Capacity: 2},
			"s2": {ID: "s2", CourseID: "c1", Capacity: 2},
		}}
		regs := &fakeRegistrationStore{sectionCourse: map[string]string{"s1": "c1", "s2": "c1"}}
		return regs, sections
	}

	t.Run("creates a registration stamped with the caller", func(t *testing.T) {
		regs, sections := newStores()
		tx := &fakeTxRunner{}
		svc := NewRegistrationService(regs, sections, tx)

		reg, err := svc.Register(context.Background(), caller, "s1")

		require.NoError(t, err)
		assert.Equal(t, "u1", reg.UserID)
		assert.Equal(t, "u1", reg.RegisteredBy)
		assert.Equal(t, caller, reg.User)
		assert.Equal(t, 1, tx.calls)
		assert.Equal(t, []string{"u1:c1"}, regs.locks)
	})

	t.Run("rejects a second registration in another section of the same course", func(t *testing.T) {
		regs, sections := newStores()
		svc := NewRegistrationService(regs, sections, &fakeTxRunner{})

		_, err := svc.Register(context.Background(), caller, "s1")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), caller, "s2")
		require.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
		assert.Len(t, regs.creates, 1)
	})

	t.Run("unknown section", func(t *testing.T) {
		regs, sections := newStores()
		svc := NewRegistrationService(regs, sections, &fakeTxRunner{})

		_, err := svc.Register(context.Background(), caller, "missing")

		require.ErrorIs(t, err, apperrors.ErrSectionNotFound)
		assert.Empty(t, regs.creates)
	})
}

func TestDeregister(t *testing.T) {
	caller := &models.User{ID: "u1"}
	regs := &fakeRegistrationStore{
		sectionCourse: map[string]string{"s1": "c1"},
		registrations: []*models.Registration{
			{ID: "r1", SectionID: "s1", UserID: "u1"},
			{ID: "r2", SectionID: "s1", UserID: "u2"},
		},
	}
	svc := NewRegistrationService(regs, &fakeSectionStore{}, &fakeTxRunner{})

	count, err := svc.Deregister(context.Background(), caller, "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, regs.registrations, 1)
}

func TestSplitRoster(t *testing.T) {
	reg := func(id string, priority bool, createdAt time.Time) *models.Registration {
		return &models.Registration{ID: id, Priority: priority, CreatedAt: createdAt}
	}
	base := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

	t.Run("under capacity leaves the waitlist empty", func(t *testing.T) {
		roster := SplitRoster([]*models.Registration{
			reg("r1", false, base),
		}, 3)

		assert.Len(t, roster.Students, 1)
		assert.Empty(t, roster.Waitlist)
	})

	t.Run("overflow beyond capacity is waitlisted in order", func(t *testing.T) {
		// Ordered as the store returns them: priority first, then oldest.
		ordered := []*models.Registration{
			reg("late-priority", true, base.Add(2*time.Hour)),
			reg("early-regular", false, base),
			reg("late-regular", false, base.Add(time.Hour)),
		}

		roster := SplitRoster(ordered, 1)

		require.Len(t, roster.Students, 1)
		assert.Equal(t, "late-priority", roster.Students[0].ID)
		require.Len(t, roster.Waitlist, 2)
		assert.Equal(t, "early-regular", roster.Waitlist[0].ID)
		assert.Equal(t, "late-regular", roster.Waitlist[1].ID)
	})

	t.Run("every registration lands on exactly one list", func(t *testing.T) {
		ordered := []*models.Registration{
			reg("r1", true, base),
			reg("r2", false, base),
			reg("r3", false, base),
		}

		for capacity := 0; capacity <= 4; capacity++ {
			roster := SplitRoster(ordered, capacity)
			assert.Equal(t, len(ordered), len(roster.Students)+len(roster.Waitlist))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		roster := SplitRoster(nil, 5)

		assert.Empty(t, roster.Students)
		assert.Empty(t, roster.Waitlist)
	})
}

func TestGetRoster(t *testing.T) {
	sections := &fakeSectionStore{sections: map[string]*models.CourseSection{
		"s1": {ID: "s1", CourseID: "c1", Capacity: 1},
	}}
	regs := &fakeRegistrationStore{
		sectionCourse: map[string]string{"s1": "c1"},
		registrations: []*models.Registration{
			{ID: "r1", SectionID: "s1", UserID: "u1"},
			{ID: "r2", SectionID: "s1", UserID: "u2"},
		},
	}
	svc := NewRegistrationService(regs, sections, &fakeTxRunner{})

	roster, err := svc.GetRoster(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, roster.Students, 1)
	assert.Len(t, roster.Waitlist, 1)

	_, err = svc.GetRoster(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrSectionNotFound)
}
