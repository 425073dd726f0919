package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockPartyFlyer = `SUMMER BLOCK PARTY
Saturday July 20, 2024
7:00 PM - 9:00 PM
at Grand Ballroom
Presented by Community Arts Council
Free food and live music for the whole neighborhood`

func TestExtractFullFlyer(t *testing.T) {
	ex := NewExtractor(DefaultThresholds(), nil)
	rec, err := ex.Extract(blockPartyFlyer, testNow)
	require.NoError(t, err)

	assert.Equal(t, "SUMMER BLOCK PARTY", rec.Title)
	assert.Equal(t, day(2024, time.July, 20), rec.StartDate)
	assert.Equal(t, day(2024, time.July, 20), rec.EndDate)
	require.NotNil(t, rec.StartTime)
	assert.Equal(t, ClockTime{Hour: 19}, *rec.StartTime)
	require.NotNil(t, rec.EndTime)
	assert.Equal(t, ClockTime{Hour: 21}, *rec.EndTime)
	assert.False(t, rec.AllDay)
	assert.Equal(t, "Grand Ballroom", rec.Location)
	assert.Equal(t, "Community Arts Council", rec.Hosts)
	assert.Equal(t, "Free food and live music for the whole neighborhood", rec.Description)
	assert.Greater(t, rec.Confidence, float32(0.5))
}

func TestExtractNoDateFallsBackToToday(t *testing.T) {
	ex := NewExtractor(DefaultThresholds(), nil)
	rec, err := ex.Extract("Open Mic Night\nat The Basement every week", testNow)
	require.NoError(t, err)

	assert.Equal(t, day(2024, time.June, 1), rec.StartDate)
	assert.True(t, rec.AllDay)
	assert.Zero(t, rec.Confidence, "missing date zeroes the summary confidence")
}

func TestExtractEmptyText(t *testing.T) {
	ex := NewExtractor(DefaultThresholds(), nil)
	_, err := ex.Extract("", testNow)
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = ex.Extract("  \n\t \n", testNow)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestExtractIsDeterministic(t *testing.T) {
	ex := NewExtractor(DefaultThresholds(), nil)
	a, err := ex.Extract(blockPartyFlyer, testNow)
	require.NoError(t, err)
	b, err := ex.Extract(blockPartyFlyer, testNow)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExtractNoTimeMeansAllDay(t *testing.T) {
	ex := NewExtractor(DefaultThresholds(), nil)
	rec, err := ex.Extract("HARVEST FAIR\nOctober 12, 2024\nat Riverside Park", testNow)
	require.NoError(t, err)

	assert.True(t, rec.AllDay)
	assert.Nil(t, rec.StartTime)
	assert.Equal(t, day(2024, time.October, 12), rec.StartDate)
	assert.Equal(t, "Riverside Park", rec.Location)
}

func TestExtractDescriptionSkipsShortFragments(t *testing.T) {
	ex := NewExtractor(DefaultThresholds(), nil)
	rec, err := ex.Extract("GALA\nJuly 20, 2024\nRSVP now\nBring your friends and neighbors for the night", testNow)
	require.NoError(t, err)

	// "RSVP now" has too few words to be body copy
	assert.Equal(t, "Bring your friends and neighbors for the night", rec.Description)
}
