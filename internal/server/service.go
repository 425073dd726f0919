package server

import (
	"time"

	"go.uber.org/zap"

	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/async"
	"github.com/flyercal-app/flyercal/internal/calendar"
	"github.com/flyercal-app/flyercal/internal/export"
	"github.com/flyercal-app/flyercal/internal/repository"
)

// FlyercalService implements v1.FlyercalServiceServer.
type FlyercalService struct {
	v1.UnimplementedFlyercalServiceServer

	filesRepo  repository.FlyerFileRepository
	jobsRepo   repository.ExtractJobRepository
	eventsRepo repository.EventRepository
	queue      async.Queue
	exporter   *export.Service
	cal        *calendar.Client // nil until OAuth is configured

	uploadDir  string
	calendarID string
	tz         *time.Location

	logger *zap.Logger
}

type Deps struct {
	FilesRepo  repository.FlyerFileRepository
	JobsRepo   repository.ExtractJobRepository
	EventsRepo repository.EventRepository
	Queue      async.Queue
	Exporter   *export.Service
	Calendar   *calendar.Client
	UploadDir  string
	CalendarID string
	TimeZone   *time.Location
}

func NewFlyercalService(d Deps, logger *zap.Logger) *FlyercalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	tz := d.TimeZone
	if tz == nil {
		tz = time.UTC
	}
	uploadDir := d.UploadDir
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	calendarID := d.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &FlyercalService{
		filesRepo:  d.FilesRepo,
		jobsRepo:   d.JobsRepo,
		eventsRepo: d.EventsRepo,
		queue:      d.Queue,
		exporter:   d.Exporter,
		cal:        d.Calendar,
		uploadDir:  uploadDir,
		calendarID: calendarID,
		tz:         tz,
		logger:     logger,
	}
}
