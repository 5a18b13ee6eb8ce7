package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrov/campusreg/internal/app/models"
	"github.com/dpetrov/campusreg/internal/app/models/dto"
	"github.com/dpetrov/campusreg/internal/pkg/apperrors"
)

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

func existingTerm(id string, start, end time.Time) *models.Term {
	return &models.Term{ID: id, Season: models.SeasonFall, Year: 2026, StartTime: start, EndTime: end}
}

func TestCreateTerm(t *testing.T) {
	t.Run("persists a valid term", func(t *testing.T) {
		store := &fakeTermStore{}
		svc := NewTermService(store)

		term, err := svc.CreateTerm(context.Background(), &dto.CreateTermRequest{
			Season:    models.SeasonSpring,
			Year:      2026,
			StartTime: day(1),
			EndTime:   day(10),
		})

		require.NoError(t, err)
		assert.Equal(t, models.SeasonSpring, term.Season)
		assert.Len(t, store.creates, 1)
	})

	t.Run("rejects unknown season without writing", func(t *testing.T) {
		store := &fakeTermStore{}
		svc := NewTermService(store)

		_, err := svc.CreateTerm(context.Background(), &dto.CreateTermRequest{
			Season:    "AUTUMN",
			Year:      2026,
			StartTime: day(1),
			EndTime:   day(10),
		})

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.Empty(t, store.creates)
	})

	t.Run("rejects non four-digit year", func(t *testing.T) {
		svc := NewTermService(&fakeTermStore{})

		_, err := svc.CreateTerm(context.Background(), &dto.CreateTermRequest{
			Season:    models.SeasonFall,
			Year:      123,
			StartTime: day(1),
			EndTime:   day(10),
		})

		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("rejects start not before end", func(t *testing.T) {
		store := &fakeTermStore{}
		svc := NewTermService(store)

		_, err := svc.CreateTerm(context.Background(), &dto.CreateTermRequest{
			Season:    models.SeasonFall,
			Year:      2026,
			StartTime: day(10),
			EndTime:   day(10),
		})

		require.ErrorIs(t, err, apperrors.ErrTermOrdering)
		assert.Empty(t, store.creates)
	})
}

func TestCreateTermConflicts(t *testing.T) {
	cases := []struct {
		name     string
		existing *models.Term
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{
			name:     "existing end inside candidate",
			existing: existingTerm("t1", day(1), day(5)),
			start:    day(4), end: day(10),
			conflict: true,
		},
		{
			name:     "existing start inside candidate",
			existing: existingTerm("t1", day(8), day(20)),
			start:    day(4), end: day(10),
			conflict: true,
		},
		{
			name:     "candidate inside existing",
			existing: existingTerm("t1", day(1), day(20)),
			start:    day(4), end: day(10),
			conflict: true,
		},
		{
			name:     "back-to-back shares one instant",
			existing: existingTerm("t1", day(1), day(4)),
			start:    day(4), end: day(10),
			conflict: true,
		},
		{
			name:     "disjoint intervals",
			existing: existingTerm("t1", day(1), day(3)),
			start:    day(4), end: day(10),
			conflict: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeTermStore{terms: []*models.Term{tc.existing}}
			svc := NewTermService(store)

			_, err := svc.CreateTerm(context.Background(), &dto.CreateTermRequest{
				Season:    models.SeasonWinter,
				Year:      2026,
				StartTime: tc.start,
				EndTime:   tc.end,
			})

			if tc.conflict {
				require.ErrorIs(t, err, apperrors.ErrTermConflict)
				assert.Empty(t, store.creates)
			} else {
				require.NoError(t, err)
				assert.Len(t, store.creates, 1)
			}
		})
	}
}

func TestUpdateTerm(t *testing.T) {
	t.Run("excludes itself from the conflict check", func(t *testing.T) {
		store := &fakeTermStore{terms: []*models.Term{
			existingTerm("t1", day(1), day(10)),
		}}
		svc := NewTermService(store)

		end := day(12)
		term, err := svc.UpdateTerm(context.Background(), "t1", &dto.UpdateTermRequest{EndTime: &end})

		require.NoError(t, err)
		assert.True(t, term.EndTime.Equal(day(12)))
		assert.Len(t, store.updates, 1)
	})

	t.Run("merged candidate still conflicts with another term", func(t *testing.T) {
		store := &fakeTermStore{terms: []*models.Term{
			existingTerm("t1", day(1), day(10)),
			existingTerm("t2", day(11), day(20)),
		}}
		svc := NewTermService(store)

		end := day(15)
		_, err := svc.UpdateTerm(context.Background(), "t1", &dto.UpdateTermRequest{EndTime: &end})

		require.ErrorIs(t, err, apperrors.ErrTermConflict)
		assert.Empty(t, store.updates)
	})

	t.Run("unknown term id", func(t *testing.T) {
		svc := NewTermService(&fakeTermStore{})

		_, err := svc.UpdateTerm(context.Background(), "missing", &dto.UpdateTermRequest{})

		require.ErrorIs(t, err, apperrors.ErrTermNotFound)
	})
}
