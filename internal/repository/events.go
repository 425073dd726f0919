package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flyercal-app/flyercal/gen/ent"
	"github.com/flyercal-app/flyercal/gen/ent/event"
	"github.com/flyercal-app/flyercal/internal/entity"
	"github.com/flyercal-app/flyercal/internal/extract"
	"github.com/flyercal-app/flyercal/internal/utils"
)

// EventUpdate carries the mutable event fields; nil leaves a field
// untouched, a pointer to the empty string clears an optional one.
type EventUpdate struct {
	Title       *string
	StartDate   *time.Time
	EndDate     *time.Time
	StartTime   *string
	EndTime     *string
	AllDay      *bool
	Location    *string
	Hosts       *string
	Description *string
	NeedsReview *bool
}

type EventRepository interface {
	CreateFromRecord(ctx context.Context, rec extract.EventRecord, needsReview bool) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, from, to *time.Time, needsReview *bool) ([]*entity.Event, error)
	Update(ctx context.Context, id uuid.UUID, upd EventUpdate) (*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetGoogleEventID(ctx context.Context, id uuid.UUID, googleID string) error
}

type eventRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewEventRepository(entc *ent.Client, log *slog.Logger) EventRepository {
	return &eventRepo{ent: entc, log: log}
}

func (r *eventRepo) CreateFromRecord(ctx context.Context, rec extract.EventRecord, needsReview bool) (*entity.Event, error) {
	create := r.ent.Event.Create().
		SetTitle(rec.Title).
		SetStartDate(rec.StartDate).
		SetEndDate(rec.EndDate).
		SetAllDay(rec.AllDay).
		SetConfidence(rec.Confidence).
		SetNeedsReview(needsReview)

	if rec.StartTime != nil {
		create.SetStartTime(rec.StartTime.String())
	}
	if rec.EndTime != nil {
		create.SetEndTime(rec.EndTime.String())
	}
	if rec.Location != "" {
		create.SetLocation(rec.Location)
	}
	if rec.Hosts != "" {
		create.SetHosts(rec.Hosts)
	}
	if rec.Description != "" {
		create.SetDescription(rec.Description)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("event create failed", "title", rec.Title, "err", err)
		return nil, err
	}
	r.log.Info("event created", "event_id", row.ID, "title", row.Title,
		"start_date", row.StartDate.Format("2006-01-02"), "confidence", row.Confidence)
	return utils.ToEvent(row), nil
}

func (r *eventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	row, err := r.ent.Event.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToEvent(row), nil
}

func (r *eventRepo) List(ctx context.Context, from, to *time.Time, needsReview *bool) ([]*entity.Event, error) {
	q := r.ent.Event.Query()
	if from != nil {
		q = q.Where(event.StartDateGTE(*from))
	}
	if to != nil {
		q = q.Where(event.StartDateLTE(*to))
	}
	if needsReview != nil {
		q = q.Where(event.NeedsReviewEQ(*needsReview))
	}
	rows, err := q.Order(ent.Asc(event.FieldStartDate), ent.Asc(event.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.log.Error("event list failed", "err", err)
		return nil, err
	}
	result := make([]*entity.Event, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEvent(row)
	}
	return result, nil
}

func (r *eventRepo) Update(ctx context.Context, id uuid.UUID, upd EventUpdate) (*entity.Event, error) {
	u := r.ent.Event.UpdateOneID(id)

	if upd.Title != nil {
		u.SetTitle(*upd.Title)
	}
	if upd.StartDate != nil {
		u.SetStartDate(*upd.StartDate)
	}
	if upd.EndDate != nil {
		u.SetEndDate(*upd.EndDate)
	}
	if upd.StartTime != nil {
		if *upd.StartTime == "" {
			u.ClearStartTime()
		} else {
			u.SetStartTime(*upd.StartTime)
		}
	}
	if upd.EndTime != nil {
		if *upd.EndTime == "" {
			u.ClearEndTime()
		} else {
			u.SetEndTime(*upd.EndTime)
		}
	}
	if upd.AllDay != nil {
		u.SetAllDay(*upd.AllDay)
	}
	if upd.Location != nil {
		if *upd.Location == "" {
			u.ClearLocation()
		} else {
			u.SetLocation(*upd.Location)
		}
	}
	if upd.Hosts != nil {
		if *upd.Hosts == "" {
			u.ClearHosts()
		} else {
			u.SetHosts(*upd.Hosts)
		}
	}
	if upd.Description != nil {
		if *upd.Description == "" {
			u.ClearDescription()
		} else {
			u.SetDescription(*upd.Description)
		}
	}
	if upd.NeedsReview != nil {
		u.SetNeedsReview(*upd.NeedsReview)
	}

	row, err := u.Save(ctx)
	if err != nil {
		r.log.Error("event update failed", "event_id", id, "err", err)
		return nil, err
	}
	r.log.Info("event updated", "event_id", id)
	return utils.ToEvent(row), nil
}

func (r *eventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Event.DeleteOneID(id).Exec(ctx); err != nil {
		r.log.Error("event delete failed", "event_id", id, "err", err)
		return err
	}
	r.log.Info("event deleted", "event_id", id)
	return nil
}

func (r *eventRepo) SetGoogleEventID(ctx context.Context, id uuid.UUID, googleID string) error {
	_, err := r.ent.Event.UpdateOneID(id).
		SetGoogleEventID(googleID).
		Save(ctx)
	if err != nil {
		r.log.Error("event google id update failed", "event_id", id, "err", err)
	}
	return err
}
