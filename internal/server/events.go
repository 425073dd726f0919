package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flyercal-app/flyercal/gen/ent"
	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/common"
	"github.com/flyercal-app/flyercal/internal/extract"
	"github.com/flyercal-app/flyercal/internal/repository"
	"github.com/flyercal-app/flyercal/internal/utils"
)

func parseEventID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "event_id must be a UUID")
	}
	return id, nil
}

func parseDatePtr(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return &t, nil
}

func (s *FlyercalService) GetEvent(ctx context.Context, req *v1.GetEventRequest) (*v1.GetEventResponse, error) {
	id, err := parseEventID(req.GetEventId())
	if err != nil {
		return nil, err
	}
	row, err := s.eventsRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "event not found")
		}
		s.logger.Warn("get event failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "get event failed")
	}
	return &v1.GetEventResponse{Event: utils.ToPBEvent(row)}, nil
}

func (s *FlyercalService) ListEvents(ctx context.Context, req *v1.ListEventsRequest) (*v1.ListEventsResponse, error) {
	validator := common.NewValidator()
	validator.Field("from_date", req.GetFromDate(), common.ISODate)
	validator.Field("to_date", req.GetToDate(), common.ISODate)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	from, _ := parseDatePtr(req.GetFromDate())
	to, _ := parseDatePtr(req.GetToDate())

	var needsReview *bool
	if req.NeedsReview != nil {
		v := req.GetNeedsReview()
		needsReview = &v
	}

	rows, err := s.eventsRepo.List(ctx, from, to, needsReview)
	if err != nil {
		s.logger.Warn("list events failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "list events failed")
	}
	out := make([]*v1.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToPBEvent(row))
	}
	return &v1.ListEventsResponse{Events: out}, nil
}

func (s *FlyercalService) UpdateEvent(ctx context.Context, req *v1.UpdateEventRequest) (*v1.UpdateEventResponse, error) {
	id, err := parseEventID(req.GetEventId())
	if err != nil {
		return nil, err
	}

	var upd repository.EventUpdate

	if req.Title != nil {
		if strings.TrimSpace(req.GetTitle()) == "" {
			return nil, status.Error(codes.InvalidArgument, "title cannot be empty")
		}
		t := req.GetTitle()
		upd.Title = &t
	}
	if req.StartDate != nil {
		d, err := parseDatePtr(req.GetStartDate())
		if err != nil || d == nil {
			return nil, status.Error(codes.InvalidArgument, "start_date must be YYYY-MM-DD")
		}
		upd.StartDate = d
	}
	if req.EndDate != nil {
		d, err := parseDatePtr(req.GetEndDate())
		if err != nil || d == nil {
			return nil, status.Error(codes.InvalidArgument, "end_date must be YYYY-MM-DD")
		}
		upd.EndDate = d
	}
	if req.StartTime != nil {
		v := req.GetStartTime()
		if v != "" {
			if _, err := extract.ParseClock(v); err != nil {
				return nil, status.Error(codes.InvalidArgument, "start_time must be HH:MM")
			}
		}
		upd.StartTime = &v
	}
	if req.EndTime != nil {
		v := req.GetEndTime()
		if v != "" {
			if _, err := extract.ParseClock(v); err != nil {
				return nil, status.Error(codes.InvalidArgument, "end_time must be HH:MM")
			}
		}
		upd.EndTime = &v
	}
	if req.AllDay != nil {
		v := req.GetAllDay()
		upd.AllDay = &v
	}
	if req.Location != nil {
		v := req.GetLocation()
		upd.Location = &v
	}
	if req.Hosts != nil {
		v := req.GetHosts()
		upd.Hosts = &v
	}
	if req.Description != nil {
		v := req.GetDescription()
		upd.Description = &v
	}
	if req.NeedsReview != nil {
		v := req.GetNeedsReview()
		upd.NeedsReview = &v
	}

	row, err := s.eventsRepo.Update(ctx, id, upd)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "event not found")
		}
		s.logger.Warn("update event failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "update event failed")
	}
	return &v1.UpdateEventResponse{Event: utils.ToPBEvent(row)}, nil
}

func (s *FlyercalService) DeleteEvent(ctx context.Context, req *v1.DeleteEventRequest) (*v1.DeleteEventResponse, error) {
	id, err := parseEventID(req.GetEventId())
	if err != nil {
		return nil, err
	}
	if err := s.eventsRepo.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "event not found")
		}
		s.logger.Warn("delete event failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "delete event failed")
	}
	return &v1.DeleteEventResponse{}, nil
}
