package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flyercal-app/flyercal/constants"
	"github.com/flyercal-app/flyercal/gen/ent"
	"github.com/flyercal-app/flyercal/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, confidence float32) error
	FinishExtract(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, confidence float32, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetEventID(ctx context.Context, jobID, eventID uuid.UUID) error
	GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.FlyerFile, error)
	GetLatestForFile(ctx context.Context, fileID uuid.UUID) (*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Create().
		SetFileID(fileID).
		SetFormat(format).
		SetStartedAt(time.Now()).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job create failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string, confidence float32) error {
	_, err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusOCROK)).
		SetOcrText(ocrText).
		SetOcrConfidence(confidence).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job ocr update failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishExtract(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage, confidence float32, needsReview bool) error {
	_, err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusExtractOK)).
		SetFinishedAt(time.Now()).
		SetExtractedJSON(extracted).
		SetExtractionConfidence(confidence).
		SetNeedsReview(needsReview).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job extract update failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetFinishedAt(time.Now()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job failure update failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) SetEventID(ctx context.Context, jobID, eventID uuid.UUID) error {
	_, err := r.ent.ExtractJob.UpdateOneID(jobID).
		SetEventID(eventID).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job link event failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) GetLatestForFile(ctx context.Context, fileID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Query().
		Where(extractjob.FileID(fileID)).
		Order(ent.Desc(extractjob.FieldStartedAt)).
		First(ctx)
}

func (r *extractJobRepo) GetWithFile(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.FlyerFile, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	file, err := r.ent.FlyerFile.Get(ctx, job.FileID)
	if err != nil {
		return nil, nil, err
	}
	return job, file, nil
}
