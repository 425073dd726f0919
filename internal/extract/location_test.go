package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStreetAddress(t *testing.T) {
	got := matchStreetAddress(Line{Text: "Join us at 123 Main Street downtown"})
	require.Len(t, got, 1)
	assert.Equal(t, "123 Main Street", got[0].Raw)
	assert.Equal(t, confLocationAddress, got[0].Confidence)
}

func TestMatchAtVenueWithVenueWord(t *testing.T) {
	got := matchAtVenue(Line{Text: "at Grand Ballroom tonight only"})
	require.Len(t, got, 1)
	// the phrase is cut right after the venue word
	assert.Equal(t, "Grand Ballroom", got[0].Raw)
	assert.Equal(t, confLocationAtVenue, got[0].Confidence)
}

func TestMatchAtVenuePlainPhrase(t *testing.T) {
	got := matchAtVenue(Line{Text: "Live at The Blue Note"})
	require.Len(t, got, 1)
	assert.Equal(t, "The Blue Note", got[0].Raw)
	assert.Equal(t, confLocationAt, got[0].Confidence)
}

func TestMatchAtVenueRequiresCapital(t *testing.T) {
	// "at 8pm" and other lowercase continuations are not venues
	assert.Empty(t, matchAtVenue(Line{Text: "doors at 8pm"}))
}

func TestMatchVenueLine(t *testing.T) {
	got := matchVenueLine(Line{Text: "Paradise Club"})
	require.Len(t, got, 1)
	assert.Equal(t, "Paradise Club", got[0].Raw)
	assert.Equal(t, confLocationVenueLine, got[0].Confidence)
}

func TestMatchVenueLineYieldsToStrongerMatchers(t *testing.T) {
	// the at-matcher already covers this line
	assert.Empty(t, matchVenueLine(Line{Text: "at Paradise Club"}))
}
