package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyercal-app/flyercal/internal/extract"
)

func timedRecord() extract.EventRecord {
	start := extract.ClockTime{Hour: 19}
	end := extract.ClockTime{Hour: 21}
	return extract.EventRecord{
		Title:     "SUMMER BLOCK PARTY",
		StartDate: time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC),
		StartTime: &start,
		EndTime:   &end,
		Location:  "Grand Ballroom",
	}
}

func TestBuildPayloadTimed(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	p := BuildPayload(timedRecord(), loc)

	assert.Equal(t, "SUMMER BLOCK PARTY", p.Summary)
	assert.Equal(t, "Grand Ballroom", p.Location)
	assert.False(t, p.AllDay)
	assert.Equal(t, "America/New_York", p.TimeZone)
	assert.Equal(t, time.Date(2024, time.July, 20, 19, 0, 0, 0, loc), p.Start)
	assert.Equal(t, time.Date(2024, time.July, 20, 21, 0, 0, 0, loc), p.End)
}

func TestBuildPayloadAllDay(t *testing.T) {
	rec := timedRecord()
	rec.StartTime = nil
	rec.EndTime = nil
	rec.AllDay = true

	p := BuildPayload(rec, time.UTC)
	assert.True(t, p.AllDay)
	assert.Equal(t, "2024-07-20", p.StartDate)
	assert.Equal(t, "2024-07-20", p.EndDate)
	assert.True(t, p.Start.IsZero())
}

func TestBuildPayloadLocationPlaceholder(t *testing.T) {
	rec := timedRecord()
	rec.Location = ""
	p := BuildPayload(rec, time.UTC)
	assert.Equal(t, UnknownLocation, p.Location)
}

func TestBuildPayloadDescriptionCarriesHosts(t *testing.T) {
	rec := timedRecord()
	rec.Description = "Free food and live music"
	rec.Hosts = "Community Arts Council"

	p := BuildPayload(rec, time.UTC)
	assert.Equal(t, "Free food and live music\n\nHosts: Community Arts Council", p.Description)

	rec.Description = ""
	p = BuildPayload(rec, time.UTC)
	assert.Equal(t, "Hosts: Community Arts Council", p.Description)
}

func TestBuildPayloadNilLocationDefaultsToUTC(t *testing.T) {
	p := BuildPayload(timedRecord(), nil)
	assert.Equal(t, "UTC", p.TimeZone)
}

func TestBuildPayloadDeterministic(t *testing.T) {
	loc := time.UTC
	a := BuildPayload(timedRecord(), loc)
	b := BuildPayload(timedRecord(), loc)
	assert.Equal(t, a, b)
}
