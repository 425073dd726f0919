package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyercal-app/flyercal/constants"
)

type stubRunner struct {
	text string
	tsv  string
	err  error
}

func (s stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	if s.err != nil {
		return nil, []byte("boom"), s.err
	}
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		return []byte(s.tsv), nil, nil
	}
	return []byte(s.text), nil, nil
}

const flyerText = "SUMMER BLOCK PARTY July 20, 2024 7:00 PM at the park with food trucks and live bands"

// tsvDoc builds tesseract TSV output, one "conf\tword" pair per row,
// with conf in column 11 and the recognized word last as tesseract emits it.
func tsvDoc(rows ...string) string {
	var b strings.Builder
	b.WriteString("level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n")
	for _, r := range rows {
		conf, word, _ := strings.Cut(r, "\t")
		b.WriteString("5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t" + conf + "\t" + word + "\n")
	}
	return b.String()
}

func TestExtractPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyer.txt")
	require.NoError(t, os.WriteFile(path, []byte(flyerText), 0o644))

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, flyerText, res.Text)
	assert.Equal(t, constants.TXT, res.SourceType)
	assert.Equal(t, "plain-text", res.Method)
	assert.Greater(t, res.Confidence, float32(0.5))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "flyer.pdf")
	assert.Error(t, err)
}

func TestExtractImageBlendsConfidence(t *testing.T) {
	e := NewExtractor(Config{EnableTSVConfidence: true}, nil)
	e.runner = stubRunner{text: flyerText, tsv: tsvDoc("80\tSUMMER", "90\tPARTY")}

	res, err := e.Extract(context.Background(), "flyer.png")
	require.NoError(t, err)

	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	// 0.7 * mean TSV (0.85) + 0.3 * heuristic (0.8)
	assert.InDelta(t, 0.835, res.Confidence, 1e-3)
}

func TestExtractImageNumericWordsAreNotConfidences(t *testing.T) {
	// flyers are full of recognized numbers ("2024", "7:00", "123"); the
	// mean must come from the conf column, never the text column
	e := NewExtractor(Config{EnableTSVConfidence: true}, nil)
	e.runner = stubRunner{text: flyerText, tsv: tsvDoc(
		"95\tPARTY",
		"90\t2024",
		"-1\t", // layout row, no word
	)}

	res, err := e.Extract(context.Background(), "flyer.png")
	require.NoError(t, err)

	// 0.7 * mean TSV (0.925) + 0.3 * heuristic (0.8)
	assert.InDelta(t, 0.8875, res.Confidence, 1e-3)
}

func TestExtractImageHeuristicOnly(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{text: flyerText}

	res, err := e.Extract(context.Background(), "flyer.jpg")
	require.NoError(t, err)
	assert.InDelta(t, heuristicConfidence(flyerText), res.Confidence, 1e-6)
}

func TestExtractImageEngineFailure(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.runner = stubRunner{err: errors.New("exit status 1")}

	_, err := e.Extract(context.Background(), "flyer.png")
	assert.ErrorContains(t, err, "tesseract")
}

func TestHeuristicConfidence(t *testing.T) {
	assert.InDelta(t, 0.2, heuristicConfidence("hello world"), 1e-6)
	assert.InDelta(t, 0.8, heuristicConfidence(flyerText), 1e-6)
	assert.LessOrEqual(t, heuristicConfidence(strings.Repeat(flyerText, 4)), float32(1.0))
}
