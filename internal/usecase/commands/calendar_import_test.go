//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"hosteed/internal/domain/reservation"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/shared"
	"hosteed/tests/common/builder"
	"hosteed/tests/common/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCodec struct {
	events []shared.CalendarEvent
	err    error
}

func (c stubCodec) Encode(string, []shared.CalendarEvent) ([]byte, error) { return nil, nil }

func (c stubCodec) Decode(io.Reader) ([]shared.CalendarEvent, error) {
	return c.events, c.err
}

func event(uid, summary, start, end string) shared.CalendarEvent {
	return shared.CalendarEvent{UID: uid, Summary: summary, Start: builder.Day(start), End: builder.Day(end)}
}

func TestCalendarImport(t *testing.T) {
	ctx := context.Background()

	t.Run("imports events and reports the ones that cannot be blocked", func(t *testing.T) {
		f := newFixture()
		f.store.AddReservation(builder.Reservation(f.property.ID(), "2024-06-20", "2024-06-25", reservation.StatusConfirmed))
		codec := stubCodec{events: []shared.CalendarEvent{
			event("a@airbnb", "Airbnb guest", "2024-06-10", "2024-06-12"),
			event("b@airbnb", "", "2024-06-12", "2024-06-14"),
			event("c@airbnb", "Overlaps booking", "2024-06-22", "2024-06-24"),
			event("d@airbnb", "Past", "2024-05-01", "2024-05-03"),
		}}
		blackouts := commands.NewBlackoutCommands(f.store, f.clock, time.UTC)
		uc := commands.NewCalendarImportCommands(blackouts, codec)

		result, err := uc.Import(ctx, f.property.ID(), strings.NewReader(""), f.host)
		require.NoError(t, err)

		require.Len(t, result.Imported, 2)
		assert.Equal(t, "Airbnb guest", result.Imported[0].Title())
		assert.Equal(t, "Imported block", result.Imported[1].Title())

		require.Len(t, result.Skipped, 2)
		assert.Equal(t, "c@airbnb", result.Skipped[0].UID)
		assert.Equal(t, "d@airbnb", result.Skipped[1].UID)
		assert.NotEmpty(t, result.Skipped[0].Reason)
		assert.Len(t, f.store.BlackoutsFor(f.property.ID()), 2)
	})

	t.Run("events overlapping each other keep the first", func(t *testing.T) {
		f := newFixture()
		codec := stubCodec{events: []shared.CalendarEvent{
			event("a", "First", "2024-06-10", "2024-06-15"),
			event("b", "Second", "2024-06-14", "2024-06-16"),
		}}
		uc := commands.NewCalendarImportCommands(commands.NewBlackoutCommands(f.store, f.clock, time.UTC), codec)

		result, err := uc.Import(ctx, f.property.ID(), strings.NewReader(""), f.host)
		require.NoError(t, err)
		assert.Len(t, result.Imported, 1)
		assert.Len(t, result.Skipped, 1)
	})

	t.Run("unreadable events are skipped, the rest is imported", func(t *testing.T) {
		f := newFixture()
		codec := stubCodec{events: []shared.CalendarEvent{
			event("good", "Blocked", "2024-06-10", "2024-06-12"),
			{UID: "bad", Summary: "broken", Err: errors.New(`event "bad": calendar event has no DTSTART`)},
		}}
		uc := commands.NewCalendarImportCommands(commands.NewBlackoutCommands(f.store, f.clock, time.UTC), codec)

		result, err := uc.Import(ctx, f.property.ID(), strings.NewReader(""), f.host)
		require.NoError(t, err)

		require.Len(t, result.Imported, 1)
		assert.Equal(t, "Blocked", result.Imported[0].Title())
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "bad", result.Skipped[0].UID)
		assert.Contains(t, result.Skipped[0].Reason, "no DTSTART")
		assert.True(t, result.Skipped[0].StartDate.IsZero())
		assert.Len(t, f.store.BlackoutsFor(f.property.ID()), 1)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewCalendarImportCommands(
			commands.NewBlackoutCommands(f.store, f.clock, time.UTC),
			stubCodec{err: errors.New("missing BEGIN:VCALENDAR")},
		)

		_, err := uc.Import(ctx, f.property.ID(), strings.NewReader("garbage"), f.host)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, commands.ErrInvalidCalendar))
	})

	t.Run("forbidden actor aborts the import", func(t *testing.T) {
		f := newFixture()
		codec := stubCodec{events: []shared.CalendarEvent{event("a", "First", "2024-06-10", "2024-06-15")}}
		uc := commands.NewCalendarImportCommands(commands.NewBlackoutCommands(f.store, f.clock, time.UTC), codec)

		_, err := uc.Import(ctx, f.property.ID(), strings.NewReader(""), f.stranger)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("storage failure aborts the import", func(t *testing.T) {
		f := newFixture()
		f.store.FailOn(memstore.OpBlackoutCreate, errors.New("connection refused"))
		codec := stubCodec{events: []shared.CalendarEvent{event("a", "First", "2024-06-10", "2024-06-15")}}
		uc := commands.NewCalendarImportCommands(commands.NewBlackoutCommands(f.store, f.clock, time.UTC), codec)

		_, err := uc.Import(ctx, f.property.ID(), strings.NewReader(""), f.host)
		require.Error(t, err)
		assert.Equal(t, errs.ErrInternal, errs.Category(err))
	})
}
