package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fieldsDoc is the JSON artifact persisted alongside an extract job so the
// resolved fields survive for review and re-submission.
type fieldsDoc struct {
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"`
	StartTime   string  `json:"start_time,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
	EndTime     string  `json:"end_time,omitempty"`
	AllDay      bool    `json:"all_day"`
	Location    string  `json:"location,omitempty"`
	Hosts       string  `json:"hosts,omitempty"`
	Description string  `json:"description,omitempty"`
	Confidence  float32 `json:"confidence"`
}

// MarshalFields renders an EventRecord as the extracted-fields JSON
// artifact. The mapping is pure; calling it twice on the same record
// yields identical bytes.
func MarshalFields(rec EventRecord) ([]byte, error) {
	doc := fieldsDoc{
		Title:       rec.Title,
		StartDate:   rec.StartDate.Format("2006-01-02"),
		EndDate:     rec.EndDate.Format("2006-01-02"),
		AllDay:      rec.AllDay,
		Location:    rec.Location,
		Hosts:       rec.Hosts,
		Description: rec.Description,
		Confidence:  rec.Confidence,
	}
	if rec.StartTime != nil {
		doc.StartTime = rec.StartTime.String()
	}
	if rec.EndTime != nil {
		doc.EndTime = rec.EndTime.String()
	}
	return json.Marshal(doc)
}

// BuildEventJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used to validate the artifact before it is persisted.
func BuildEventJSONSchema() map[string]any {
	timeProp := map[string]any{"type": "string", "pattern": `^([01]\d|2[0-3]):[0-5]\d$`}
	dateProp := map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"start_date":  dateProp,
			"start_time":  timeProp,
			"end_date":    dateProp,
			"end_time":    timeProp,
			"all_day":     map[string]any{"type": "boolean"},
			"location":    map[string]any{"type": "string"},
			"hosts":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"title", "start_date", "all_day", "confidence"},
	}
}

// ValidateFieldsJSON validates an extracted-fields artifact against the
// event schema.
func ValidateFieldsJSON(data []byte) error {
	b, err := json.Marshal(BuildEventJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("event.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("event.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal fields: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("fields do not match schema: %w", err)
	}
	return nil
}
