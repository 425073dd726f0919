package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datesOf(cands []Candidate) []time.Time {
	var out []time.Time
	for _, c := range cands {
		out = append(out, c.Date)
	}
	return out
}

func TestMatchISODate(t *testing.T) {
	got := matchISODate(Line{Index: 1, Text: "Doors open 2024-07-20 at dusk"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, day(2024, time.July, 20), got[0].Date)
	assert.Equal(t, confDateISO, got[0].Confidence)
	assert.Equal(t, "2024-07-20", got[0].Raw)
}

func TestMatchISODateRejectsImpossible(t *testing.T) {
	got := matchISODate(Line{Text: "2024-02-30"}, testNow)
	assert.Empty(t, got)
}

func TestMatchMonthNameDate(t *testing.T) {
	t.Run("with year", func(t *testing.T) {
		got := matchMonthNameDate(Line{Text: "Saturday July 20, 2024"}, testNow)
		require.Len(t, got, 1)
		assert.Equal(t, day(2024, time.July, 20), got[0].Date)
		assert.Equal(t, confDateMonthYear, got[0].Confidence)
	})

	t.Run("abbreviated with ordinal", func(t *testing.T) {
		got := matchMonthNameDate(Line{Text: "Sept 5th"}, testNow)
		require.Len(t, got, 1)
		assert.Equal(t, day(2024, time.September, 5), got[0].Date)
		assert.Equal(t, confDateMonthNoYear, got[0].Confidence)
	})

	t.Run("year-less date already past rolls to next year", func(t *testing.T) {
		got := matchMonthNameDate(Line{Text: "March 3rd"}, testNow)
		require.Len(t, got, 1)
		assert.Equal(t, day(2025, time.March, 3), got[0].Date)
	})

	t.Run("month followed by a year is not a month-day", func(t *testing.T) {
		got := matchMonthNameDate(Line{Text: "May 2024"}, testNow)
		assert.Empty(t, got)
	})
}

func TestMatchNumericDate(t *testing.T) {
	got := matchNumericDate(Line{Text: "on 7/20/2024 only"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, day(2024, time.July, 20), got[0].Date)
	assert.Equal(t, confDateNumericYear, got[0].Confidence)

	got = matchNumericDate(Line{Text: "3/4/25"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, day(2025, time.March, 4), got[0].Date)
}

func TestMatchBareNumericDateEmitsBothReadings(t *testing.T) {
	got := matchBareNumericDate(Line{Text: "save the date: 3/4"}, testNow)
	require.Len(t, got, 2)
	assert.Equal(t, confDateBareNumeric, got[0].Confidence)
	assert.Equal(t, confDateBareNumeric, got[1].Confidence)
	assert.ElementsMatch(t,
		[]time.Time{day(2025, time.March, 4), day(2025, time.April, 3)},
		datesOf(got))
}

func TestMatchBareNumericDateSingleReading(t *testing.T) {
	// 15 cannot be a month, so only July 15 remains
	got := matchBareNumericDate(Line{Text: "15/7"}, testNow)
	require.Len(t, got, 1)
	assert.Equal(t, day(2024, time.July, 15), got[0].Date)
}

func TestMatchBareNumericDateSkipsFullDates(t *testing.T) {
	// 7/20/2024 belongs to the numeric matcher; the bare matcher must not
	// pick 7/20 or 20/2024 out of it
	got := matchBareNumericDate(Line{Text: "7/20/2024"}, testNow)
	assert.Empty(t, got)
}

func TestWeekdayHints(t *testing.T) {
	lines := []Line{
		{Index: 0, Text: "This Saturday and next Saturday"},
		{Index: 1, Text: "or Thursday"},
	}
	hints := WeekdayHints(lines)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Thursday}, hints)
}

func TestNextOccurrenceFeb29(t *testing.T) {
	// Feb 29 2025 does not exist and must not resolve
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, ok := nextOccurrence(time.February, 29, now)
	assert.False(t, ok)
}
