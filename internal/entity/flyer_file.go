package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlyerFile represents one uploaded flyer image (or text capture).
type FlyerFile struct {
	ID          uuid.UUID  `json:"id"`
	SourcePath  string     `json:"source_path"`
	FileExt     string     `json:"file_ext"`
	ContentHash []byte     `json:"content_hash"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
