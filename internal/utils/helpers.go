package utils

import (
	"time"

	"github.com/flyercal-app/flyercal/gen/ent"
	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToEvent maps a database row onto the transfer struct handed to the
// upper layers.
func ToEvent(e *ent.Event) *entity.Event {
	return &entity.Event{
		ID:            e.ID,
		Title:         e.Title,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		AllDay:        e.AllDay,
		Location:      e.Location,
		Hosts:         e.Hosts,
		Description:   e.Description,
		Confidence:    e.Confidence,
		NeedsReview:   e.NeedsReview,
		GoogleEventID: e.GoogleEventID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToExtractJob maps a job row onto its transfer struct.
func ToExtractJob(j *ent.ExtractJob) *entity.ExtractJob {
	out := &entity.ExtractJob{
		ID:            j.ID,
		FileID:        j.FileID,
		EventID:       j.EventID,
		Format:        j.Format,
		Status:        strOrEmpty(j.Status),
		StartedAt:     j.StartedAt,
		FinishedAt:    j.FinishedAt,
		OCRText:       j.OcrText,
		OCRConfidence: j.OcrConfidence,
		ExtractedJSON: j.ExtractedJSON,
		Confidence:    j.ExtractionConfidence,
		NeedsReview:   j.NeedsReview,
		ErrorMessage:  j.ErrorMessage,
	}
	return out
}

func ToPBJob(j *entity.ExtractJob) *v1.Job {
	out := &v1.Job{
		Id:          j.ID.String(),
		FileId:      j.FileID.String(),
		Format:      j.Format,
		Status:      j.Status,
		StartedAt:   j.StartedAt.UTC().Format(time.RFC3339),
		NeedsReview: j.NeedsReview,
	}
	if j.EventID != nil {
		out.EventId = j.EventID.String()
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if j.OCRConfidence != nil {
		out.OcrConfidence = *j.OCRConfidence
	}
	if j.Confidence != nil {
		out.ExtractionConfidence = *j.Confidence
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	return out
}

func ToPBEvent(e *entity.Event) *v1.Event {
	return &v1.Event{
		Id:            e.ID.String(),
		Title:         e.Title,
		StartDate:     e.StartDate.Format("2006-01-02"),
		EndDate:       e.EndDate.Format("2006-01-02"),
		StartTime:     strOrEmpty(e.StartTime),
		EndTime:       strOrEmpty(e.EndTime),
		AllDay:        e.AllDay,
		Location:      strOrEmpty(e.Location),
		Hosts:         strOrEmpty(e.Hosts),
		Description:   strOrEmpty(e.Description),
		Confidence:    e.Confidence,
		NeedsReview:   e.NeedsReview,
		GoogleEventId: strOrEmpty(e.GoogleEventID),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
