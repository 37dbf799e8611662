// pkg/nifi_cli/wrap.go

package nifi_cli

import (
	"context"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Wrap adapts a RuntimeContext handler into a cobra RunE, adding panic
// recovery and end-of-command accounting.
func Wrap(fn func(rc *nifi_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := nifi_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		defer func() {
			if r := recover(); r != nil {
				err = cerr.AssertionFailedf("panic: %v", r)
				rc.Log.Error("Panic recovered", zap.Any("panic", r))
			}
		}()

		// cobra prints usage on every error by default; runtime failures
		// are not usage mistakes.
		cmd.SilenceUsage = true

		return fn(rc, cmd, args)
	}
}
