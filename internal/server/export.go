package server

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
)

// ExportEvents renders events in a date window as an XLSX workbook.
// Window semantics: only from -> from..today; only to -> beginning..to;
// neither -> everything.
func (s *FlyercalService) ExportEvents(ctx context.Context, req *v1.ExportEventsRequest) (*v1.ExportEventsResponse, error) {
	from, err := parseDatePtr(req.GetFromDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	to, err := parseDatePtr(req.GetToDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	xlsx, err := s.exporter.ExportEventsXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &v1.ExportEventsResponse{Xlsx: xlsx}, nil
}
