package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flyercal-app/flyercal/gen/ent"
	"github.com/flyercal-app/flyercal/gen/ent/flyerfile"
)

type FlyerFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.FlyerFile, error)
	// UpsertByHash returns the existing row when the same content was
	// uploaded before; the bool reports deduplication.
	UpsertByHash(ctx context.Context, sourcePath, ext string, hash []byte, at time.Time) (*ent.FlyerFile, bool, error)
	SetEventID(ctx context.Context, fileID, eventID uuid.UUID) error
}

type flyerFileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewFlyerFileRepository(entc *ent.Client, log *slog.Logger) FlyerFileRepository {
	return &flyerFileRepo{ent: entc, log: log}
}

func (r *flyerFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.FlyerFile, error) {
	return r.ent.FlyerFile.Get(ctx, id)
}

func (r *flyerFileRepo) UpsertByHash(ctx context.Context, sourcePath, ext string, hash []byte, at time.Time) (*ent.FlyerFile, bool, error) {
	existing, err := r.ent.FlyerFile.Query().
		Where(flyerfile.ContentHashEQ(hash)).
		Only(ctx)
	if err == nil {
		r.log.Info("flyer_file deduplicated", "file_id", existing.ID, "path", sourcePath)
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}

	row, err := r.ent.FlyerFile.Create().
		SetSourcePath(sourcePath).
		SetFileExt(ext).
		SetContentHash(hash).
		SetUploadedAt(at).
		Save(ctx)
	if err != nil {
		r.log.Error("flyer_file create failed", "path", sourcePath, "err", err)
		return nil, false, err
	}
	r.log.Info("flyer_file created", "file_id", row.ID, "path", sourcePath)
	return row, false, nil
}

func (r *flyerFileRepo) SetEventID(ctx context.Context, fileID, eventID uuid.UUID) error {
	_, err := r.ent.FlyerFile.UpdateOneID(fileID).
		SetEventID(eventID).
		Save(ctx)
	if err != nil {
		r.log.Error("flyer_file link event failed", "file_id", fileID, "err", err)
	}
	return err
}
