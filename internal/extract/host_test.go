package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchHostPresenter(t *testing.T) {
	got := matchHostPresenter(Line{Text: "Presented by Community Arts Council"})
	require.Len(t, got, 1)
	assert.Equal(t, "Community Arts Council", got[0].Raw)
	assert.Equal(t, confHostPresenter, got[0].Confidence)
}

func TestMatchHostBilling(t *testing.T) {
	got := matchHostBilling(Line{Text: "featuring The Night Owls"})
	require.Len(t, got, 1)
	assert.Equal(t, "The Night Owls", got[0].Raw)
	assert.Equal(t, confHostBilling, got[0].Confidence)
}
