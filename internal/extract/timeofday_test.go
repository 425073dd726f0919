package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTimeRange(t *testing.T) {
	got := matchTimeRange(Line{Index: 2, Text: "7:00 PM - 9:00 PM"})
	require.Len(t, got, 2)

	assert.Equal(t, KindTime, got[0].Kind)
	assert.Equal(t, ClockTime{Hour: 19}, got[0].Clock)
	assert.Equal(t, confTimeRangeStart, got[0].Confidence)

	assert.Equal(t, KindEndTime, got[1].Kind)
	assert.Equal(t, ClockTime{Hour: 21}, got[1].Clock)
	assert.Equal(t, confTimeRangeEnd, got[1].Confidence)
}

func TestMatchTimeRangeStartInheritsMeridiem(t *testing.T) {
	got := matchTimeRange(Line{Text: "7-9pm"})
	require.Len(t, got, 2)
	assert.Equal(t, ClockTime{Hour: 19}, got[0].Clock)
	assert.Equal(t, confTimeRangeNoMer, got[0].Confidence)
	assert.Equal(t, ClockTime{Hour: 21}, got[1].Clock)
}

func TestMatchTimeRangeIgnoresDateSpans(t *testing.T) {
	// no closing am/pm, so this is a date span, not a time range
	assert.Empty(t, matchTimeRange(Line{Text: "July 20-21"}))
}

func TestMatchTime12(t *testing.T) {
	got := matchTime12(Line{Text: "doors at 8pm sharp"})
	require.Len(t, got, 1)
	assert.Equal(t, ClockTime{Hour: 20}, got[0].Clock)
	assert.Equal(t, confTime12NoMinutes, got[0].Confidence)

	got = matchTime12(Line{Text: "9:30 AM"})
	require.Len(t, got, 1)
	assert.Equal(t, ClockTime{Hour: 9, Minute: 30}, got[0].Clock)
	assert.Equal(t, confTime12, got[0].Confidence)
}

func TestMatchTime12Midnight(t *testing.T) {
	got := matchTime12(Line{Text: "12am"})
	require.Len(t, got, 1)
	assert.Equal(t, ClockTime{Hour: 0}, got[0].Clock)

	got = matchTime12(Line{Text: "12pm"})
	require.Len(t, got, 1)
	assert.Equal(t, ClockTime{Hour: 12}, got[0].Clock)
}

func TestMatchTime24(t *testing.T) {
	got := matchTime24(Line{Text: "Doors 19:30"})
	require.Len(t, got, 1)
	assert.Equal(t, ClockTime{Hour: 19, Minute: 30}, got[0].Clock)
	assert.Equal(t, confTime24, got[0].Confidence)
}

func TestMatchTime24SkipsTwelveHourMatches(t *testing.T) {
	// "9:30 AM" is the 12-hour matcher's business
	assert.Empty(t, matchTime24(Line{Text: "9:30 AM"}))
}

func TestClockFromRejectsBadHours(t *testing.T) {
	_, ok := clockFrom("13", "00", "pm")
	assert.False(t, ok)
	_, ok = clockFrom("0", "30", "am")
	assert.False(t, ok)
	_, ok = clockFrom("24", "00", "")
	assert.False(t, ok)
}
