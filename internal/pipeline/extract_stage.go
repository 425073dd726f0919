package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flyercal-app/flyercal/constants"
	"github.com/flyercal-app/flyercal/internal/extract"
	"github.com/flyercal-app/flyercal/internal/repository"
)

// Config holds thresholds and behavior flags for the extract stage.
type Config struct {
	MinConfidence float32 // records below this are flagged for review; default 0.50
}

type ExtractStage struct {
	Logger     *slog.Logger
	Cfg        Config
	JobsRepo   repository.ExtractJobRepository
	FilesRepo  repository.FlyerFileRepository
	EventsRepo repository.EventRepository
	Extractor  *extract.Extractor
}

func NewExtractStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	files repository.FlyerFileRepository,
	events repository.EventRepository,
	ex *extract.Extractor,
) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.50
	}
	return &ExtractStage{
		Logger:     logger,
		Cfg:        cfg,
		JobsRepo:   jobs,
		FilesRepo:  files,
		EventsRepo: events,
		Extractor:  ex,
	}
}

// Run executes the field-extract stage for an existing OCR job (jobID).
// Preconditions: job is OCR_OK with non-empty ocr_text and a valid file link.
// Effects: writes extracted_json, extraction_confidence, needs_review;
// creates the events row and links both job and file to it.
func (p *ExtractStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, file, err := p.JobsRepo.GetWithFile(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || job.OcrText == nil {
		return job.ID, fmt.Errorf("job not ready for extract: status=%v", job.Status)
	}

	p.Logger.Info("extract fields start",
		"job_id", job.ID, "file_id", file.ID, "ocr_bytes", len(*job.OcrText),
	)

	rec, err := p.Extractor.Extract(*job.OcrText, time.Now())
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("extract fields: %w", err)
	}

	raw, err := extract.MarshalFields(rec)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("marshal fields: %w", err)
	}
	if err := extract.ValidateFieldsJSON(raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate fields: %w", err)
	}

	needsReview := rec.Confidence < p.Cfg.MinConfidence

	event, err := p.EventsRepo.CreateFromRecord(ctx, rec, needsReview)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("create event: %w", err)
	}

	// idempotent links: job -> event, file -> event
	if err := p.JobsRepo.SetEventID(ctx, job.ID, event.ID); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("link job->event: %v", err))
		return job.ID, err
	}
	if err := p.FilesRepo.SetEventID(ctx, file.ID, event.ID); err != nil {
		return job.ID, err
	}

	if err := p.JobsRepo.FinishExtract(ctx, job.ID, raw, rec.Confidence, needsReview); err != nil {
		return job.ID, err
	}

	p.Logger.Info("extracted fields successfully",
		"job_id", job.ID, "event_id", event.ID,
		"title", rec.Title,
		"date", rec.StartDate.Format("2006-01-02"),
		"all_day", rec.AllDay,
		"needs_review", needsReview,
		"confidence", rec.Confidence,
	)
	return job.ID, nil
}
