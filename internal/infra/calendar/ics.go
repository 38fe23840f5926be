// Package calendar encodes blocked dates as iCalendar feeds and reads external ones.
package calendar

import (
	"io"
	"strings"
	"time"

	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//Hosteed//Booking Calendar//EN"

var (
	ErrMalformedCalendar = errs.New("malformed iCalendar document")
	ErrMalformedEvent    = errs.New("malformed calendar event")
	ErrEventWithoutStart = errs.New("calendar event has no DTSTART")
)

type ICSCodec struct {
	clock clock.Clock
}

func NewICSCodec(clk clock.Clock) *ICSCodec {
	return &ICSCodec{clock: clk}
}

// Encode writes one all-day VEVENT per block. DTEND is the exclusive checkout day.
func (c *ICSCodec) Encode(calendarName string, events []shared.CalendarEvent) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(calendarName)

	stamp := c.clock.Now().UTC()
	for _, e := range events {
		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(stamp)
		ev.SetAllDayStartAt(e.Start)
		ev.SetAllDayEndAt(e.End)
		ev.SetSummary(e.Summary)
		if e.Description != nil && *e.Description != "" {
			ev.SetDescription(*e.Description)
		}
	}
	return []byte(cal.Serialize()), nil
}

// Decode reads every VEVENT as a block of whole days. Timed events cover each day they touch;
// a missing DTEND means a single day. An unreadable event is returned with Err set so the
// rest of the feed still decodes; only a document that cannot be parsed fails as a whole.
func (c *ICSCodec) Decode(r io.Reader) ([]shared.CalendarEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse calendar"), ErrMalformedCalendar)
	}

	out := make([]shared.CalendarEvent, 0, len(cal.Events()))
	for _, ev := range cal.Events() {
		e := shared.CalendarEvent{UID: ev.Id()}
		if p := ev.GetProperty(ics.ComponentPropertySummary); p != nil {
			e.Summary = unescape(p.Value)
		}
		if p := ev.GetProperty(ics.ComponentPropertyDescription); p != nil && p.Value != "" {
			desc := unescape(p.Value)
			e.Description = &desc
		}

		start, err := eventStart(ev)
		if err != nil {
			e.Err = errs.Mark(errs.Wrapf(err, "event %q", ev.Id()), ErrMalformedEvent)
			out = append(out, e)
			continue
		}
		e.Start = start
		e.End = eventEnd(ev, start)
		out = append(out, e)
	}
	return out, nil
}

func eventStart(ev *ics.VEvent) (time.Time, error) {
	if ev.GetProperty(ics.ComponentPropertyDtStart) == nil {
		return time.Time{}, ErrEventWithoutStart
	}
	if t, err := ev.GetAllDayStartAt(); err == nil {
		return dayOf(t), nil
	}
	t, err := ev.GetStartAt()
	if err != nil {
		return time.Time{}, err
	}
	return dayOf(t.UTC()), nil
}

func eventEnd(ev *ics.VEvent, start time.Time) time.Time {
	oneDay := start.AddDate(0, 0, 1)
	if ev.GetProperty(ics.ComponentPropertyDtEnd) == nil {
		return oneDay
	}
	if t, err := ev.GetAllDayEndAt(); err == nil && isMidnight(t) {
		return maxTime(dayOf(t), oneDay)
	}
	t, err := ev.GetEndAt()
	if err != nil {
		return oneDay
	}
	t = t.UTC()
	end := dayOf(t)
	if !isMidnight(t) {
		end = end.AddDate(0, 0, 1)
	}
	return maxTime(end, oneDay)
}

// dayOf keeps the calendar date as written, whatever location the parser attached.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

var textUnescaper = strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)

func unescape(s string) string {
	return textUnescaper.Replace(s)
}
