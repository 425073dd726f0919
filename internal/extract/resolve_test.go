package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveText(t *testing.T, raw string, now time.Time) Resolution {
	t.Helper()
	lines := Normalize(raw)
	require.NotEmpty(t, lines)
	return Resolve(Scan(lines, now), WeekdayHints(lines), now, DefaultThresholds())
}

func TestResolveAmbiguousDatePrefersNearestFuture(t *testing.T) {
	// 3/4 read as March 4 or April 3; both land in 2025 from June 2024,
	// and March 4 comes first
	res := resolveText(t, "Big Gala\n3/4", testNow)
	c, ok := res[KindDate]
	require.True(t, ok)
	assert.Equal(t, day(2025, time.March, 4), c.Date)
}

func TestResolveAmbiguousDateWeekdayHintWins(t *testing.T) {
	// April 3 2025 is a Thursday, March 4 2025 is not; the named weekday
	// overrides the nearest-future rule
	res := resolveText(t, "Big Gala\nThursday 3/4", testNow)
	c, ok := res[KindDate]
	require.True(t, ok)
	assert.Equal(t, day(2025, time.April, 3), c.Date)
	assert.Equal(t, time.Thursday, c.Date.Weekday())
}

func TestResolveTimeRange(t *testing.T) {
	res := resolveText(t, "Party\n7:00 PM - 9:00 PM", testNow)

	start, ok := res[KindTime]
	require.True(t, ok)
	assert.Equal(t, ClockTime{Hour: 19}, start.Clock)

	end, ok := res[KindEndTime]
	require.True(t, ok)
	assert.Equal(t, ClockTime{Hour: 21}, end.Clock)
}

func TestResolveHigherConfidenceWins(t *testing.T) {
	// the ISO date outranks the ambiguous bare numeric on the next line
	res := resolveText(t, "Gala\n2024-07-20\n3/4", testNow)
	c, ok := res[KindDate]
	require.True(t, ok)
	assert.Equal(t, day(2024, time.July, 20), c.Date)
}

func TestResolveEarlierLineBreaksConfidenceTies(t *testing.T) {
	now := testNow
	cands := []Candidate{
		{Kind: KindTitle, Raw: "second", Line: 5, Confidence: 0.7},
		{Kind: KindTitle, Raw: "first", Line: 2, Confidence: 0.7},
	}
	res := Resolve(cands, nil, now, DefaultThresholds())
	require.Contains(t, res, KindTitle)
	assert.Equal(t, "first", res[KindTitle].Raw)
}

func TestResolveThresholdGatesWeakCandidates(t *testing.T) {
	cands := []Candidate{
		{Kind: KindDate, Raw: "maybe", Line: 0, Confidence: 0.3, Date: day(2024, time.July, 1)},
	}
	res := Resolve(cands, nil, testNow, DefaultThresholds())
	assert.NotContains(t, res, KindDate)
}

func TestResolveMissingFieldsStayMissing(t *testing.T) {
	res := resolveText(t, "An evening of chamber music", testNow)
	assert.NotContains(t, res, KindDate)
	assert.NotContains(t, res, KindTime)
	assert.Contains(t, res, KindTitle)
}

func TestResolveDeterministic(t *testing.T) {
	raw := "SPRING FLING\nSaturday April 5\n7-10pm\nat Riverside Park"
	a := resolveText(t, raw, testNow)
	b := resolveText(t, raw, testNow)
	assert.Equal(t, a, b)
}
