package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("name", "flyer.png"))
	assert.NotNil(t, Required("name", ""))
	assert.NotNil(t, Required("name", "   "))
	assert.NotNil(t, Required("name", nil))

	val := "ok"
	assert.Nil(t, Required("name", &val))
	var empty *string
	assert.NotNil(t, Required("name", empty))
}

func TestMaxLength(t *testing.T) {
	rule := func(field string, v interface{}) *ValidationError {
		return MaxLength(field, v, 5)
	}
	assert.Nil(t, rule("title", "short"))
	assert.NotNil(t, rule("title", "too long"))
	// rune count, not byte count
	assert.Nil(t, rule("title", "héllo"))
	// non-string values pass through untouched
	assert.Nil(t, rule("title", 42))
}

func TestUUIDRule(t *testing.T) {
	assert.Nil(t, UUID("event_id", "0d1f9f9c-9a52-4d2c-b171-16b6ef3b1e52"))
	assert.NotNil(t, UUID("event_id", "not-a-uuid"))
	assert.NotNil(t, UUID("event_id", 7))
}

func TestISODateRule(t *testing.T) {
	assert.Nil(t, ISODate("from_date", "2024-07-20"))
	assert.Nil(t, ISODate("from_date", ""), "empty means unset, not invalid")
	assert.NotNil(t, ISODate("from_date", "07/20/2024"))
	assert.NotNil(t, ISODate("from_date", "2024-13-01"))
}

func TestTimeZoneRule(t *testing.T) {
	assert.Nil(t, TimeZone("tz", "America/New_York"))
	assert.Nil(t, TimeZone("tz", ""))
	assert.NotNil(t, TimeZone("tz", "Mars/Olympus_Mons"))
}

func TestValidatorCollectsErrors(t *testing.T) {
	v := NewValidator()
	v.Field("filename", "", Required).
		Field("from_date", "bad", ISODate)

	require.True(t, v.HasErrors())
	assert.Len(t, v.Errors(), 2)
	assert.Contains(t, v.ErrorMessage(), "filename")
	assert.Contains(t, v.ErrorMessage(), "from_date")
}

func TestValidateAndReturnError(t *testing.T) {
	v := NewValidator()
	v.Field("filename", "flyer.png", Required)
	assert.NoError(t, ValidateAndReturnError(v))

	v.Field("filename", "", Required)
	err := ValidateAndReturnError(v)
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
