package shared

import (
	"io"
	"time"
)

// CalendarEvent is an all-day block; End is exclusive like DTEND.
// Err is set when the event could not be read; Start and End are then zero.
type CalendarEvent struct {
	UID         string
	Summary     string
	Description *string
	Start       time.Time
	End         time.Time
	Err         error
}

type CalendarCodec interface {
	Encode(calendarName string, events []CalendarEvent) ([]byte, error)
	Decode(r io.Reader) ([]CalendarEvent, error)
}
