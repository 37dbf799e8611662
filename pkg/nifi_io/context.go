// pkg/nifi_io/context.go

package nifi_io

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-command context, logger and telemetry span.
// It is created once per invocation by the CLI wrapper and passed down into
// every component; nothing below the command layer touches globals.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext sets up tracing and logging hooks for a single command run.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	ctx, span := telemetry.Start(ctx, cmdName)
	traceID := span.SpanContext().TraceID().String()

	log := zap.L().With(
		zap.String("command", cmdName),
		zap.String("trace_id", traceID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Span:       span,
		Log:        log,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts them into an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome and closes the telemetry span.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	if success {
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("args", strings.Join(os.Args[1:], " ")),
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	rc.Span.SetAttributes(attrs...)
}
