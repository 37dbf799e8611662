// pkg/nifi_err/user.go
//
// Expected-error classification: user mistakes (bad input, declined
// confirmations, missing preconditions) are logged softly and exit 1 without
// a stack trace; everything else is treated as a system failure.

package nifi_err

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// UserError marks an error as caused by user input rather than a system fault.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewUserError creates an expected error from a format string.
func NewUserError(format string, args ...interface{}) error {
	return &UserError{cause: fmt.Errorf(format, args...)}
}

// NewExpectedError wraps an error for softer UX handling, logging it at warn level.
func NewExpectedError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	otelzap.Ctx(ctx).Warn("Expected user error", zap.Error(err))
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
