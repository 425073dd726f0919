// runextract runs OCR and field extraction on a single flyer file and
// prints the record plus the calendar payload it would submit. No
// database, no network; useful for tuning matchers against real flyers.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/flyercal-app/flyercal/internal/calendar"
	"github.com/flyercal-app/flyercal/internal/extract"
	"github.com/flyercal-app/flyercal/internal/ocr"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <flyer-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	reader := ocr.NewExtractor(ocr.Config{
		TessdataDir:         os.Getenv("TESSDATA_PREFIX"),
		PSM:                 6,
		EnableTSVConfidence: true,
	}, logger)

	res, err := reader.Extract(ctx, path)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("ocr ok",
		"method", res.Method,
		"bytes", len(res.Text),
		"confidence", res.Confidence,
		"duration_ms", res.Duration.Milliseconds(),
	)

	ex := extract.NewExtractor(extract.DefaultThresholds(), logger)
	rec, err := ex.Extract(res.Text, time.Now())
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	fields, err := extract.MarshalFields(rec)
	if err != nil {
		logger.Error("marshal fields", "error", err)
		os.Exit(1)
	}

	payload := calendar.BuildPayload(rec, time.Local)
	out, err := json.MarshalIndent(map[string]any{
		"fields":  json.RawMessage(fields),
		"payload": payload,
	}, "", "  ")
	if err != nil {
		logger.Error("marshal output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
