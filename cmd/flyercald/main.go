package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/flyercal-app/flyercal/gen/proto/flyercal/v1"
	"github.com/flyercal-app/flyercal/internal/async"
	"github.com/flyercal-app/flyercal/internal/calendar"
	"github.com/flyercal-app/flyercal/internal/common"
	"github.com/flyercal-app/flyercal/internal/export"
	"github.com/flyercal-app/flyercal/internal/extract"
	"github.com/flyercal-app/flyercal/internal/ocr"
	"github.com/flyercal-app/flyercal/internal/pipeline"
	repo "github.com/flyercal-app/flyercal/internal/repository"
	"github.com/flyercal-app/flyercal/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	tz, _ := time.LoadLocation(cfg.Calendar.TimeZone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	filesRepo := repo.NewFlyerFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	eventsRepo := repo.NewEventRepository(entc, logger)

	reader := ocr.NewExtractor(ocr.Config{
		Tesseract:           cfg.OCR.Tesseract,
		TesseractLang:       cfg.OCR.TesseractLang,
		TessdataDir:         cfg.OCR.TessdataDir,
		PSM:                 6,
		EnableTSVConfidence: cfg.OCR.EnableTSVConf,
	}, logger)
	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, reader, logger)

	extractor := extract.NewExtractor(extract.Thresholds{
		Title:    cfg.Extract.TitleThreshold,
		Date:     cfg.Extract.DateThreshold,
		Time:     cfg.Extract.TimeThreshold,
		Location: cfg.Extract.LocationThreshold,
		Host:     cfg.Extract.HostThreshold,
	}, logger)
	extractStage := pipeline.NewExtractStage(logger, pipeline.Config{
		MinConfidence: cfg.Extract.MinConfidence,
	}, jobsRepo, filesRepo, eventsRepo, extractor)

	processor := pipeline.NewProcessor(logger, ocrStage, extractStage)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	// Calendar submission stays disabled until OAuth is set up; the rest
	// of the pipeline does not depend on it.
	var calClient *calendar.Client
	if cfg.Calendar.ClientID != "" {
		calClient, err = calendar.NewClient(ctx, logger,
			cfg.Calendar.ClientID, cfg.Calendar.ClientSecret, cfg.Calendar.TokenFile)
		if err != nil {
			logger.Warn("calendar client unavailable", "error", err)
		}
	}

	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()

	exporter := export.NewService(eventsRepo, logger)
	svc := server.NewFlyercalService(server.Deps{
		FilesRepo:  filesRepo,
		JobsRepo:   jobsRepo,
		EventsRepo: eventsRepo,
		Queue:      queue,
		Exporter:   exporter,
		Calendar:   calClient,
		UploadDir:  cfg.Server.UploadDir,
		CalendarID: cfg.Calendar.CalendarID,
		TimeZone:   tz,
	}, zlog)

	grpcServer := grpc.NewServer()
	v1.RegisterFlyercalServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("flyercald listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
