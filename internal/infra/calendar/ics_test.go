//go:build unit

package calendar_test

import (
	"strings"
	"testing"
	"time"

	"hosteed/internal/infra/calendar"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"
	"hosteed/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec() *calendar.ICSCodec {
	return calendar.NewICSCodec(clock.NewMockClock(time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)))
}

func TestICSCodec_EncodeAllDayEvents(t *testing.T) {
	desc := "Roof repairs"
	body, err := newCodec().Encode("Villa Ambatoloaka", []shared.CalendarEvent{
		{UID: "reservation-1@hosteed", Summary: "Reserved", Start: builder.Day("2024-07-01"), End: builder.Day("2024-07-05")},
		{UID: "blackout-2@hosteed", Summary: "Maintenance", Description: &desc, Start: builder.Day("2024-08-10"), End: builder.Day("2024-08-12")},
	})
	require.NoError(t, err)

	doc := string(body)
	assert.Contains(t, doc, "BEGIN:VCALENDAR")
	assert.Contains(t, doc, "X-WR-CALNAME:Villa Ambatoloaka")
	assert.Contains(t, doc, "UID:reservation-1@hosteed")
	assert.Contains(t, doc, "DTSTART;VALUE=DATE:20240701")
	assert.Contains(t, doc, "DTEND;VALUE=DATE:20240705")
	assert.Contains(t, doc, "SUMMARY:Maintenance")
	assert.Contains(t, doc, "DESCRIPTION:Roof repairs")
	assert.Equal(t, 2, strings.Count(doc, "BEGIN:VEVENT"))
}

func TestICSCodec_RoundTrip(t *testing.T) {
	codec := newCodec()
	desc := "Family stay"
	events := []shared.CalendarEvent{
		{UID: "a@hosteed", Summary: "Reserved", Start: builder.Day("2024-07-01"), End: builder.Day("2024-07-05")},
		{UID: "b@hosteed", Summary: "Owner", Description: &desc, Start: builder.Day("2024-12-24"), End: builder.Day("2025-01-02")},
	}
	body, err := codec.Encode("Villa", events)
	require.NoError(t, err)

	decoded, err := codec.Decode(strings.NewReader(string(body)))
	require.NoError(t, err)
	if diff := cmp.Diff(events, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestICSCodec_DecodeExternalFeed(t *testing.T) {
	feed := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Airbnb Inc//Hosting Calendar//EN",
		"BEGIN:VEVENT",
		"UID:single-day@example.com",
		"DTSTART;VALUE=DATE:20240901",
		"SUMMARY:Not available",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:timed@example.com",
		"DTSTART:20240910T150000Z",
		"DTEND:20240912T110000Z",
		"SUMMARY:Booked",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	events, err := newCodec().Decode(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, builder.Day("2024-09-01"), events[0].Start)
	assert.Equal(t, builder.Day("2024-09-02"), events[0].End)
	assert.Equal(t, "Not available", events[0].Summary)
	assert.Nil(t, events[0].Description)

	assert.Equal(t, builder.Day("2024-09-10"), events[1].Start)
	assert.Equal(t, builder.Day("2024-09-13"), events[1].End)
}

func TestICSCodec_DecodeKeepsGoodEventsNextToBrokenOnes(t *testing.T) {
	feed := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:good@example.com",
		"DTSTART;VALUE=DATE:20240901",
		"DTEND;VALUE=DATE:20240903",
		"SUMMARY:Blocked",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:bad",
		"SUMMARY:broken",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	events, err := newCodec().Decode(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.NoError(t, events[0].Err)
	assert.Equal(t, builder.Day("2024-09-01"), events[0].Start)
	assert.Equal(t, builder.Day("2024-09-03"), events[0].End)

	assert.Equal(t, "bad", events[1].UID)
	assert.Equal(t, "broken", events[1].Summary)
	require.Error(t, events[1].Err)
	assert.True(t, errs.Is(events[1].Err, calendar.ErrMalformedEvent))
	assert.True(t, errs.Is(events[1].Err, calendar.ErrEventWithoutStart))
	assert.True(t, events[1].Start.IsZero())
}
