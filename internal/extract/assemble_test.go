package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssembleDefaults(t *testing.T) {
	rec := Assemble(Resolution{}, testNow)

	assert.Equal(t, DefaultTitle, rec.Title)
	assert.Equal(t, day(2024, time.June, 1), rec.StartDate)
	assert.Equal(t, rec.StartDate, rec.EndDate)
	assert.True(t, rec.AllDay)
	assert.Nil(t, rec.StartTime)
	assert.Nil(t, rec.EndTime)
	assert.Zero(t, rec.Confidence)
}

func TestAssembleDefaultDuration(t *testing.T) {
	res := Resolution{
		KindDate: {Kind: KindDate, Confidence: 0.9, Date: day(2024, time.July, 20)},
		KindTime: {Kind: KindTime, Confidence: 0.85, Clock: ClockTime{Hour: 20}},
	}
	rec := Assemble(res, testNow)

	assert.False(t, rec.AllDay)
	assert.Equal(t, ClockTime{Hour: 20}, *rec.StartTime)
	assert.Equal(t, ClockTime{Hour: 21}, *rec.EndTime)
	assert.Equal(t, rec.StartDate, rec.EndDate)
}

func TestAssembleMidnightRollover(t *testing.T) {
	res := Resolution{
		KindDate: {Kind: KindDate, Confidence: 0.9, Date: day(2024, time.July, 20)},
		KindTime: {Kind: KindTime, Confidence: 0.85, Clock: ClockTime{Hour: 23, Minute: 30}},
	}
	rec := Assemble(res, testNow)

	assert.Equal(t, ClockTime{Hour: 0, Minute: 30}, *rec.EndTime)
	assert.Equal(t, day(2024, time.July, 21), rec.EndDate)
}

func TestAssembleExplicitEndBeforeStartRollsOver(t *testing.T) {
	res := Resolution{
		KindDate:    {Kind: KindDate, Confidence: 0.9, Date: day(2024, time.July, 20)},
		KindTime:    {Kind: KindTime, Confidence: 0.85, Clock: ClockTime{Hour: 22}},
		KindEndTime: {Kind: KindEndTime, Confidence: 0.8, Clock: ClockTime{Hour: 2}},
	}
	rec := Assemble(res, testNow)

	assert.Equal(t, ClockTime{Hour: 2}, *rec.EndTime)
	assert.Equal(t, day(2024, time.July, 21), rec.EndDate)
}

func TestAssembleConfidenceIsMinOfRequiredFields(t *testing.T) {
	res := Resolution{
		KindTitle: {Kind: KindTitle, Raw: "Gala", Confidence: 0.55},
		KindDate:  {Kind: KindDate, Confidence: 0.9, Date: day(2024, time.July, 20)},
	}
	rec := Assemble(res, testNow)
	assert.InDelta(t, 0.55, rec.Confidence, 1e-6)

	// a missing date zeroes the summary even with a confident title
	rec = Assemble(Resolution{
		KindTitle: {Kind: KindTitle, Raw: "Gala", Confidence: 0.7},
	}, testNow)
	assert.Zero(t, rec.Confidence)
}

func TestAssembleOptionalFields(t *testing.T) {
	res := Resolution{
		KindTitle:    {Kind: KindTitle, Raw: "Gala", Confidence: 0.55},
		KindDate:     {Kind: KindDate, Confidence: 0.9, Date: day(2024, time.July, 20)},
		KindLocation: {Kind: KindLocation, Raw: "Grand Ballroom", Confidence: 0.7},
		KindHost:     {Kind: KindHost, Raw: "Arts Council", Confidence: 0.6},
	}
	rec := Assemble(res, testNow)
	assert.Equal(t, "Grand Ballroom", rec.Location)
	assert.Equal(t, "Arts Council", rec.Hosts)
}
