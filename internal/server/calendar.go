package server

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flyercal-app/flyercal/gen/ent"
	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/calendar"
	"github.com/flyercal-app/flyercal/internal/common"
	"github.com/flyercal-app/flyercal/internal/entity"
	"github.com/flyercal-app/flyercal/internal/extract"
)

// SubmitToCalendar pushes a stored event to Google Calendar and records
// the remote event ID on the row.
func (s *FlyercalService) SubmitToCalendar(ctx context.Context, req *v1.SubmitToCalendarRequest) (*v1.SubmitToCalendarResponse, error) {
	if s.cal == nil {
		return nil, status.Error(codes.FailedPrecondition, "calendar submission is not configured")
	}
	id, err := parseEventID(req.GetEventId())
	if err != nil {
		return nil, err
	}

	row, err := s.eventsRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "event not found")
		}
		s.logger.Warn("load event failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "load event failed")
	}

	rec, err := recordFromRow(row)
	if err != nil {
		s.logger.Warn("stored event is malformed", zap.String("event_id", id.String()), zap.Error(err))
		return nil, status.Error(codes.Internal, "stored event is malformed")
	}

	calendarID := strings.TrimSpace(req.GetCalendarId())
	if calendarID == "" {
		calendarID = s.calendarID
	}

	payload := calendar.BuildPayload(rec, s.tz)
	googleID, err := s.cal.InsertEvent(ctx, calendarID, payload)
	if err != nil {
		return nil, mapSubmitError(err)
	}

	if err := s.eventsRepo.SetGoogleEventID(ctx, id, googleID); err != nil {
		// the remote event exists; surface the id anyway
		s.logger.Error("persist google event id failed",
			zap.String("event_id", id.String()), zap.String("google_event_id", googleID), zap.Error(err))
	}

	return &v1.SubmitToCalendarResponse{GoogleEventId: googleID}, nil
}

func mapSubmitError(err error) error {
	switch {
	case errors.Is(err, common.ErrAuthExpired):
		return status.Error(codes.Unauthenticated, "calendar authorization expired, re-run calauth")
	case errors.Is(err, common.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "calendar API rate limited, retry later")
	case errors.Is(err, common.ErrPayloadInvalid):
		return status.Errorf(codes.InvalidArgument, "calendar rejected the event: %v", err)
	}
	return status.Errorf(codes.Internal, "calendar submission failed: %v", err)
}

// recordFromRow rebuilds the extraction record shape from a stored event
// so payload building stays a single code path.
func recordFromRow(e *entity.Event) (extract.EventRecord, error) {
	rec := extract.EventRecord{
		Title:      e.Title,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		AllDay:     e.AllDay,
		Confidence: e.Confidence,
	}
	if e.Location != nil {
		rec.Location = *e.Location
	}
	if e.Hosts != nil {
		rec.Hosts = *e.Hosts
	}
	if e.Description != nil {
		rec.Description = *e.Description
	}
	if !rec.AllDay {
		if e.StartTime == nil || e.EndTime == nil {
			rec.AllDay = true
			return rec, nil
		}
		start, err := extract.ParseClock(*e.StartTime)
		if err != nil {
			return rec, err
		}
		end, err := extract.ParseClock(*e.EndTime)
		if err != nil {
			return rec, err
		}
		rec.StartTime = &start
		rec.EndTime = &end
	}
	return rec, nil
}
