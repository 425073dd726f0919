package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flyercal-app/flyercal/internal/common"
)

// Processor coordinates OCR (text recognition) then field extraction.
type Processor struct {
	Logger  *slog.Logger
	OCR     *OCRStage
	Extract *ExtractStage
}

func NewProcessor(logger *slog.Logger, ocrStage *OCRStage, extractStage *ExtractStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocrStage, Extract: extractStage}
}

// ProcessFile runs OCR for a fileID (creating/advancing extract_job),
// then extracts event fields from the recognized text and creates the
// event. Returns the final jobID (same one started by OCR).
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	log := p.Logger
	if trace := common.RequestIDFromContext(ctx); trace != "" {
		log = log.With("trace_id", trace)
	}

	jobID, ocrRes, err := p.OCR.Run(ctx, fileID)
	if err != nil {
		log.Error("processor.ocr.failed", "file_id", fileID, "err", err)
		return jobID, err
	}
	log.Info("processor.ocr.ok",
		"file_id", fileID,
		"job_id", jobID,
		"method", ocrRes.Method,
		"confidence", ocrRes.Confidence,
	)

	if _, err := p.Extract.Run(ctx, jobID); err != nil {
		log.Error("processor.extract.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	log.Info("processor.extract.ok", "job_id", jobID)
	return jobID, nil
}
