//go:build unit

package availability_test

import (
	"errors"
	"testing"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = day("2024-06-01")

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	dr, err := daterange.New(day(start), day(end))
	require.NoError(t, err)
	return dr
}

func booking(t *testing.T, start, end string, status reservation.Status) *reservation.Reservation {
	t.Helper()
	r, err := reservation.ReconstructReservation(uuid.New(), uuid.New(), uuid.New(),
		rng(t, start, end), status, today, today)
	require.NoError(t, err)
	return r
}

func TestCheck(t *testing.T) {
	t.Run("boundary touch is available", func(t *testing.T) {
		existing := booking(t, "2024-06-10", "2024-06-15", reservation.StatusConfirmed)

		err := availability.Check(today, rng(t, "2024-06-15", "2024-06-18"),
			[]*reservation.Reservation{existing}, nil)
		assert.NoError(t, err)
	})

	t.Run("overlap with confirmed reservation conflicts", func(t *testing.T) {
		existing := booking(t, "2024-06-10", "2024-06-15", reservation.StatusConfirmed)

		err := availability.Check(today, rng(t, "2024-06-14", "2024-06-20"),
			[]*reservation.Reservation{existing}, nil)

		var conflict *availability.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, availability.EntityReservation, conflict.Kind)
		assert.Equal(t, existing.ID(), conflict.ID)
		assert.Equal(t, existing.Stay(), conflict.Range)
	})

	t.Run("only blocking statuses conflict", func(t *testing.T) {
		for _, status := range []reservation.Status{
			reservation.StatusConfirmed, reservation.StatusCheckedIn, reservation.StatusCheckedOut,
		} {
			existing := booking(t, "2024-06-10", "2024-06-15", status)
			err := availability.Check(today, rng(t, "2024-06-12", "2024-06-13"),
				[]*reservation.Reservation{existing}, nil)
			assert.Error(t, err, status.String())
		}
		for _, status := range []reservation.Status{reservation.StatusPending, reservation.StatusCancelled} {
			existing := booking(t, "2024-06-10", "2024-06-15", status)
			err := availability.Check(today, rng(t, "2024-06-12", "2024-06-13"),
				[]*reservation.Reservation{existing}, nil)
			assert.NoError(t, err, status.String())
		}
	})

	t.Run("blackout conflicts", func(t *testing.T) {
		blackout := availability.ReconstructBlackoutPeriod(uuid.New(), uuid.New(),
			rng(t, "2024-07-01", "2024-07-05"), "Maintenance", nil, uuid.New(), today)

		err := availability.Check(today, rng(t, "2024-07-04", "2024-07-06"), nil,
			[]*availability.BlackoutPeriod{blackout})

		var conflict *availability.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, availability.EntityBlackout, conflict.Kind)
		assert.Equal(t, blackout.ID(), conflict.ID)
		assert.Contains(t, conflict.Error(), "2024-07-01")
	})

	t.Run("start before today is rejected", func(t *testing.T) {
		err := availability.Check(today, rng(t, "2024-05-31", "2024-06-02"), nil, nil)
		assert.ErrorIs(t, err, availability.ErrStartInPast)
	})

	t.Run("start today with a time of day is accepted", func(t *testing.T) {
		err := availability.Check(today.Add(15*time.Hour), rng(t, "2024-06-01", "2024-06-02"), nil, nil)
		assert.NoError(t, err)
	})
}

func TestConflictProperty(t *testing.T) {
	// conflict iff a1 < b2 && b1 < a2 over a small grid of day offsets
	base := day("2024-08-01")
	for a1 := 0; a1 < 6; a1++ {
		for a2 := a1 + 1; a2 <= 6; a2++ {
			for b1 := 0; b1 < 6; b1++ {
				for b2 := b1 + 1; b2 <= 6; b2++ {
					a, _ := daterange.New(base.AddDate(0, 0, a1), base.AddDate(0, 0, a2))
					b, _ := daterange.New(base.AddDate(0, 0, b1), base.AddDate(0, 0, b2))
					blackout := availability.ReconstructBlackoutPeriod(uuid.New(), uuid.New(), a, "x", nil, uuid.New(), today)

					got := availability.FindConflict(b, nil, []*availability.BlackoutPeriod{blackout}) != nil
					want := a1 < b2 && b1 < a2
					if got != want {
						t.Fatalf("A=[%d,%d) B=[%d,%d): conflict=%v want %v", a1, a2, b1, b2, got, want)
					}
				}
			}
		}
	}
}

func TestNewBlackoutPeriod(t *testing.T) {
	period := rng(t, "2024-07-01", "2024-07-05")

	_, err := availability.NewBlackoutPeriod(uuid.New(), period, "   ", nil, uuid.New(), today)
	assert.ErrorIs(t, err, availability.ErrEmptyTitle)

	blank := " "
	b, err := availability.NewBlackoutPeriod(uuid.New(), period, " Renovation ", &blank, uuid.New(), today)
	require.NoError(t, err)
	assert.Equal(t, "Renovation", b.Title())
	assert.Nil(t, b.Description())
	assert.NotEqual(t, uuid.Nil, b.ID())
}
