package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents an extracted flyer event for data transfer between layers.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	StartTime *string   `json:"start_time,omitempty"` // "15:04", nil for all-day
	EndTime   *string   `json:"end_time,omitempty"`
	AllDay    bool      `json:"all_day"`

	Location    *string `json:"location,omitempty"`
	Hosts       *string `json:"hosts,omitempty"`
	Description *string `json:"description,omitempty"`

	Confidence    float32   `json:"confidence"`
	NeedsReview   bool      `json:"needs_review"`
	GoogleEventID *string   `json:"google_event_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
