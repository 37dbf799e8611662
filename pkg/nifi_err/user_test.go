// pkg/nifi_err/user_test.go

package nifi_err

import (
	"context"
	"errors"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid port: %s", "abc")
	require.Error(t, err)
	assert.Equal(t, "invalid port: abc", err.Error())
	assert.True(t, IsExpectedUserError(err))
}

func TestNewExpectedError(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, NewExpectedError(ctx, nil))

	cause := errors.New("deployment aborted")
	err := NewExpectedError(ctx, cause)
	require.Error(t, err)
	assert.True(t, IsExpectedUserError(err))
	assert.Equal(t, "deployment aborted", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIsExpectedUserErrorThroughWrapping(t *testing.T) {
	ctx := context.Background()

	inner := NewExpectedError(ctx, errors.New("missing keystore"))
	wrapped := cerr.Wrap(inner, "preparing TLS deployment")
	assert.True(t, IsExpectedUserError(wrapped))

	assert.False(t, IsExpectedUserError(errors.New("daemon unreachable")))
	assert.False(t, IsExpectedUserError(nil))
}
