package commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/user"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultImportedTitle = "Imported block"

var ErrInvalidCalendar = errs.New("invalid iCalendar body")

type SkippedEvent struct {
	UID       string
	Summary   string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type ImportResult struct {
	Imported []*availability.BlackoutPeriod
	Skipped  []SkippedEvent
}

//go:generate mockgen -source=calendar_import.go -destination=../../../tests/mock/commands/calendar_import.go -package=commandsmock
type CalendarImportCommands interface {
	Import(ctx context.Context, propertyID uuid.UUID, body io.Reader, actor user.Actor) (*ImportResult, error)
}

type calendarImportCommandsImpl struct {
	blackouts BlackoutCommands
	codec     shared.CalendarCodec
}

func NewCalendarImportCommands(blackouts BlackoutCommands, codec shared.CalendarCodec) CalendarImportCommands {
	return &calendarImportCommandsImpl{blackouts: blackouts, codec: codec}
}

// Import turns each VEVENT into a blackout. Unreadable events, events in the past and events
// overlapping existing blocks are skipped and reported. Authorization and storage failures
// abort the import.
func (uc *calendarImportCommandsImpl) Import(
	ctx context.Context,
	propertyID uuid.UUID,
	body io.Reader,
	actor user.Actor,
) (*ImportResult, error) {
	events, err := uc.codec.Decode(body)
	if err != nil {
		return nil, errs.Validation(errs.Mark(err, ErrInvalidCalendar))
	}

	result := &ImportResult{
		Imported: make([]*availability.BlackoutPeriod, 0, len(events)),
		Skipped:  []SkippedEvent{},
	}
	for _, ev := range events {
		if ev.Err != nil {
			result.Skipped = append(result.Skipped, skipped(ev, ev.Err))
			continue
		}

		title := ev.Summary
		if title == "" {
			title = defaultImportedTitle
		}

		b, err := uc.blackouts.Create(ctx, CreateBlackoutInput{
			PropertyID:  propertyID,
			StartDate:   ev.Start,
			EndDate:     ev.End,
			Title:       title,
			Description: ev.Description,
		}, actor)
		if err != nil {
			if errs.Is(err, errs.ErrConflict) || errs.Is(err, errs.ErrValidation) {
				result.Skipped = append(result.Skipped, skipped(ev, err))
				continue
			}
			return nil, err
		}
		result.Imported = append(result.Imported, b)
	}

	slog.InfoContext(ctx, "calendar imported",
		"property_id", propertyID,
		"imported", len(result.Imported),
		"skipped", len(result.Skipped))
	return result, nil
}

func skipped(ev shared.CalendarEvent, reason error) SkippedEvent {
	return SkippedEvent{
		UID:       ev.UID,
		Summary:   ev.Summary,
		StartDate: ev.Start,
		EndDate:   ev.End,
		Reason:    reason.Error(),
	}
}
