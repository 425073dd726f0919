package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flyercal-app/flyercal/gen/ent"
	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/utils"
)

// GetJob reports pipeline progress for an upload. Lookup is by job ID,
// or by file ID for the most recent job of that file.
func (s *FlyercalService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jobID := strings.TrimSpace(req.GetJobId())
	fileID := strings.TrimSpace(req.GetFileId())
	if (jobID == "") == (fileID == "") {
		return nil, status.Error(codes.InvalidArgument, "exactly one of job_id or file_id is required")
	}

	var job *ent.ExtractJob
	switch {
	case jobID != "":
		id, err := uuid.Parse(jobID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "job_id must be a UUID")
		}
		job, _, err = s.jobsRepo.GetWithFile(ctx, id)
		if err != nil {
			return nil, jobLookupError(s.logger, err)
		}
	default:
		id, err := uuid.Parse(fileID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "file_id must be a UUID")
		}
		job, err = s.jobsRepo.GetLatestForFile(ctx, id)
		if err != nil {
			return nil, jobLookupError(s.logger, err)
		}
	}
	return &v1.GetJobResponse{Job: utils.ToPBJob(utils.ToExtractJob(job))}, nil
}

func jobLookupError(logger *zap.Logger, err error) error {
	if ent.IsNotFound(err) {
		return status.Error(codes.NotFound, "job not found")
	}
	logger.Warn("get job failed", zap.Error(err))
	return status.Error(codes.Internal, "get job failed")
}
