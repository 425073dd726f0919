package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flyercal-app/flyercal/constants"
	"github.com/flyercal-app/flyercal/internal/ocr"
	"github.com/flyercal-app/flyercal/internal/repository"
)

type OCRStage struct {
	FilesRepo repository.FlyerFileRepository
	JobsRepo  repository.ExtractJobRepository
	Reader    *ocr.Extractor
	Logger    *slog.Logger
}

func NewOCRStage(files repository.FlyerFileRepository, jobs repository.ExtractJobRepository, reader *ocr.Extractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{FilesRepo: files, JobsRepo: jobs, Reader: reader, Logger: logger}
}

// Run starts an extract_job, runs OCR, and persists the recognized text.
// Returns the job ID and the extraction summary.
func (p *OCRStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, ocr.ExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, err
	}

	res, err := p.Reader.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if format == constants.IMAGE && res.Confidence > 0 && res.Confidence < ocr.ImageConfidenceThreshold {
		p.Logger.Warn("image ocr confidence low", "file_id", fileID, "job_id", job.ID, "conf", res.Confidence)
	}

	if err := p.JobsRepo.FinishOCR(ctx, job.ID, res.Text, res.Confidence); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
