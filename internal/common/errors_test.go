package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	plain := NewAppError("CONFIG_ERROR", "DB_URL is required", nil)
	assert.Equal(t, "CONFIG_ERROR: DB_URL is required", plain.Error())

	wrapped := NewAppError("CONFIG_ERROR", "bad timezone", ErrInvalidInput)
	assert.Contains(t, wrapped.Error(), "bad timezone")
	assert.ErrorIs(t, wrapped, ErrInvalidInput)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))

	base := errors.New("boom")
	err := WrapError(base, "load token")
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "load token: boom", err.Error())
}

func TestGRPCHelpers(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{InvalidArgumentError("bad"), codes.InvalidArgument},
		{InvalidArgumentErrorf("bad %d", 1), codes.InvalidArgument},
		{NotFoundError("missing"), codes.NotFound},
		{InternalError("broken"), codes.Internal},
		{InternalErrorf("broken %s", "pipe"), codes.Internal},
		{FailedPreconditionError("not yet"), codes.FailedPrecondition},
	}
	for _, tc := range cases {
		st, ok := status.FromError(tc.err)
		require.True(t, ok)
		assert.Equal(t, tc.want, st.Code())
	}
}
