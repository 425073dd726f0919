// Package extract turns raw OCR text from an event flyer into a
// structured, confidence-scored event record. The pipeline is a chain of
// pure stages - normalize, scan, resolve, assemble - each a function of
// its inputs plus an explicit reference time, so a given text and now
// always produce the same record.
package extract

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// ErrEmptyText is returned when the OCR output is empty or all whitespace.
// Extraction refuses to run rather than assemble a meaningless event.
var ErrEmptyText = errors.New("ocr text is empty or unusable")

// Extractor runs the full text-to-record pipeline with a fixed threshold
// tuning. Safe for concurrent use; it holds no per-invocation state.
type Extractor struct {
	th     Thresholds
	logger *slog.Logger
}

func NewExtractor(th Thresholds, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{th: th, logger: logger}
}

// Extract runs normalize -> scan -> resolve -> assemble on raw OCR text.
// now anchors year inference and day/month disambiguation.
func (e *Extractor) Extract(raw string, now time.Time) (EventRecord, error) {
	lines := Normalize(raw)
	if len(lines) == 0 {
		return EventRecord{}, ErrEmptyText
	}

	cands := Scan(lines, now)
	res := Resolve(cands, WeekdayHints(lines), now, e.th)
	rec := Assemble(res, now)
	rec.Description = leftoverDescription(lines, res)

	e.logger.Debug("extract.done",
		"lines", len(lines),
		"candidates", len(cands),
		"resolved", len(res),
		"confidence", rec.Confidence,
	)
	return rec, nil
}

// leftoverDescription joins substantive lines that no resolved field
// consumed. Short fragments are dropped; what remains usually reads like
// the flyer's body copy.
func leftoverDescription(lines []Line, res Resolution) string {
	used := make(map[int]bool, len(res))
	for _, c := range res {
		used[c.Line] = true
	}

	var parts []string
	for _, ln := range lines {
		if used[ln.Index] {
			continue
		}
		if len(strings.Fields(ln.Text)) > 3 {
			parts = append(parts, ln.Text)
		}
	}
	return strings.Join(parts, " ")
}
