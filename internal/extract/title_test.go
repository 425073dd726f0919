package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleCandidates(t *testing.T) {
	lines := []Line{
		{Index: 0, Text: "Summer Block Party Extravaganza"},
		{Index: 1, Text: "SUMMER BLOCK PARTY"},
		{Index: 2, Text: "JULY 20"},
		{Index: 3, Text: "AB"},
	}
	got := titleCandidates(lines)
	require.Len(t, got, 2)

	assert.Equal(t, "Summer Block Party Extravaganza", got[0].Raw)
	assert.Equal(t, confTitleWordy, got[0].Confidence)

	// all-caps digit-free line gets elevated confidence
	assert.Equal(t, "SUMMER BLOCK PARTY", got[1].Raw)
	assert.Equal(t, confTitleAllCaps, got[1].Confidence)
}

func TestIsShouting(t *testing.T) {
	assert.True(t, isShouting("SUMMER BLOCK PARTY"))
	assert.False(t, isShouting("JULY 20"), "digits disqualify a line")
	assert.False(t, isShouting("Summer Party"), "mixed case is not shouting")
	assert.False(t, isShouting("AB"), "too short")
	assert.False(t, isShouting("A B C D E F G H I J K L"), "too many words")
}
