package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSplitsAndTrims(t *testing.T) {
	lines := Normalize("  SUMMER PARTY  \r\n\r\nJuly\t20,   2024\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "SUMMER PARTY", lines[0].Text)
	assert.Equal(t, "July 20, 2024", lines[1].Text)
}

func TestNormalizePreservesOriginalLineIndex(t *testing.T) {
	lines := Normalize("first\n\n\nfourth")
	require.Len(t, lines, 2)
	assert.Equal(t, 0, lines[0].Index)
	assert.Equal(t, 3, lines[1].Index)
}

func TestNormalizeDropsBoxNoise(t *testing.T) {
	lines := Normalize("TITLE\n-----\n====\n~~~~\nbody text")
	require.Len(t, lines, 2)
	assert.Equal(t, "TITLE", lines[0].Text)
	assert.Equal(t, "body text", lines[1].Text)
}

func TestNormalizeFixesDigitConfusables(t *testing.T) {
	cases := map[string]string{
		"July 2O, 2O24": "July 20, 2024", // O -> 0 inside digit runs
		"7:0O PM":       "7:00 PM",
		"2Ol7":          "2017", // l -> 1
		"est. 199S":     "est. 1995",
	}
	for in, want := range cases {
		lines := Normalize(in)
		require.Len(t, lines, 1, "input %q", in)
		assert.Equal(t, want, lines[0].Text, "input %q", in)
	}
}

func TestNormalizeLeavesWordsAlone(t *testing.T) {
	// no digits in the run, so the confusion table must not apply
	lines := Normalize("HELLO Olive Oil")
	require.Len(t, lines, 1)
	assert.Equal(t, "HELLO Olive Oil", lines[0].Text)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   \n\t\n  "))
}
