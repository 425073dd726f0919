package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/flyercal-app/flyercal/internal/repository"
)

// Service is a tiny façade over the events repository that produces XLSX
// bytes for exports.
type Service struct {
	eventsRepo repository.EventRepository
	logger     *slog.Logger
}

func NewService(events repository.EventRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{eventsRepo: events, logger: logger}
}

// ExportEventsXLSX returns an XLSX workbook (as bytes) for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all events.
func (s *Service) ExportEventsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	events, err := s.eventsRepo.List(ctx, fromDate, toDate, nil)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Events"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Title",
		"Start",
		"End",
		"Location",
		"Hosts",
		"Confidence",
		"Google Event ID",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range events {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.StartDate.Format("2006-01-02"))
		write(2, e.Title)

		if e.AllDay {
			write(3, "all day")
			write(4, "")
		} else {
			if e.StartTime != nil {
				write(3, *e.StartTime)
			}
			if e.EndTime != nil {
				write(4, *e.EndTime)
			}
		}

		if e.Location != nil {
			write(5, *e.Location)
		}
		if e.Hosts != nil {
			write(6, *e.Hosts)
		}
		write(7, fmt.Sprintf("%.2f", e.Confidence))
		if e.GoogleEventID != nil {
			write(8, *e.GoogleEventID)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // title
	_ = f.SetColWidth(sheet, "C", "D", 10) // times
	_ = f.SetColWidth(sheet, "E", "E", 32) // location
	_ = f.SetColWidth(sheet, "F", "F", 24) // hosts
	_ = f.SetColWidth(sheet, "H", "H", 28) // google id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(events),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
