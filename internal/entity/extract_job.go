package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob tracks one run of the OCR+extraction pipeline over a file.
type ExtractJob struct {
	ID      uuid.UUID  `json:"id"`
	FileID  uuid.UUID  `json:"file_id"`
	EventID *uuid.UUID `json:"event_id,omitempty"`

	Format     string     `json:"format"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	OCRText       *string         `json:"ocr_text,omitempty"`
	OCRConfidence *float32        `json:"ocr_confidence,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	Confidence    *float32        `json:"confidence,omitempty"`
	NeedsReview   bool            `json:"needs_review"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
}
