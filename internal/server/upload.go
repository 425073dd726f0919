package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flyercal-app/flyercal/constants"
	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/async"
	"github.com/flyercal-app/flyercal/internal/common"
)

// UploadFlyer stores the flyer bytes under the upload directory,
// deduplicates by content hash and queues OCR + extraction.
func (s *FlyercalService) UploadFlyer(ctx context.Context, req *v1.UploadFlyerRequest) (*v1.UploadFlyerResponse, error) {
	validator := common.NewValidator()
	validator.Field("filename", req.GetFilename(), common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is empty")
	}
	name := strings.TrimSpace(req.GetFilename())

	ext := constants.NormalizeExt(filepath.Ext(name))
	if constants.MapExtToFormat(ext) == "" {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension: %q", ext)
	}

	sum := sha256.Sum256(req.GetContent())
	hash := sum[:]

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.logger.Error("upload dir create failed", zap.String("dir", s.uploadDir), zap.Error(err))
		return nil, status.Error(codes.Internal, "store flyer failed")
	}
	path := filepath.Join(s.uploadDir, uuid.New().String()+"."+ext)
	if err := os.WriteFile(path, req.GetContent(), 0o644); err != nil {
		s.logger.Error("flyer write failed", zap.String("path", path), zap.Error(err))
		return nil, status.Error(codes.Internal, "store flyer failed")
	}

	row, dedup, err := s.filesRepo.UpsertByHash(ctx, path, ext, hash, time.Now())
	if err != nil {
		_ = os.Remove(path)
		return nil, status.Error(codes.Internal, "store flyer failed")
	}
	if dedup {
		// the bytes already live at the original path
		_ = os.Remove(path)
	}

	if !dedup || req.GetForce() {
		if err := s.queue.Enqueue(ctx, async.Job{
			FileID:      row.ID,
			Force:       dedup && req.GetForce(),
			SubmittedAt: time.Now(),
			TraceID:     uuid.New().String(),
		}); err != nil {
			s.logger.Error("enqueue failed", zap.String("file_id", row.ID.String()), zap.Error(err))
			return nil, status.Error(codes.Internal, "enqueue failed")
		}
	} else {
		s.logger.Info("skipping processing (duplicate)",
			zap.String("file_id", row.ID.String()), zap.String("filename", name))
	}

	return &v1.UploadFlyerResponse{
		FileId:         row.ID.String(),
		Deduplicated:   dedup,
		ContentHashHex: hex.EncodeToString(hash),
		FileExt:        row.FileExt,
		UploadedAt:     row.UploadedAt.UTC().Format(time.RFC3339),
	}, nil
}
