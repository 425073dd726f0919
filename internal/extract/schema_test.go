package extract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() EventRecord {
	start := ClockTime{Hour: 19}
	end := ClockTime{Hour: 21}
	return EventRecord{
		Title:      "SUMMER BLOCK PARTY",
		StartDate:  day(2024, time.July, 20),
		EndDate:    day(2024, time.July, 20),
		StartTime:  &start,
		EndTime:    &end,
		Location:   "Grand Ballroom",
		Hosts:      "Community Arts Council",
		Confidence: 0.55,
	}
}

func TestMarshalFieldsValidatesAgainstSchema(t *testing.T) {
	raw, err := MarshalFields(sampleRecord())
	require.NoError(t, err)
	assert.NoError(t, ValidateFieldsJSON(raw))
}

func TestMarshalFieldsAllDay(t *testing.T) {
	rec := sampleRecord()
	rec.StartTime = nil
	rec.EndTime = nil
	rec.AllDay = true

	raw, err := MarshalFields(rec)
	require.NoError(t, err)
	require.NoError(t, ValidateFieldsJSON(raw))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, true, doc["all_day"])
	assert.NotContains(t, doc, "start_time")
	assert.NotContains(t, doc, "end_time")
}

func TestMarshalFieldsDeterministic(t *testing.T) {
	a, err := MarshalFields(sampleRecord())
	require.NoError(t, err)
	b, err := MarshalFields(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValidateFieldsJSONRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"empty title":    `{"title":"","start_date":"2024-07-20","all_day":true,"confidence":0.5}`,
		"bad date":       `{"title":"X","start_date":"07/20/2024","all_day":true,"confidence":0.5}`,
		"bad time":       `{"title":"X","start_date":"2024-07-20","start_time":"25:00","all_day":false,"confidence":0.5}`,
		"missing fields": `{"title":"X"}`,
		"extra field":    `{"title":"X","start_date":"2024-07-20","all_day":true,"confidence":0.5,"venue":"no"}`,
	}
	for name, doc := range cases {
		assert.Error(t, ValidateFieldsJSON([]byte(doc)), name)
	}
}
