// pkg/nifi/reconcile.go

package nifi

import (
	"fmt"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/docker/docker/client"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReconcileExisting resolves a name collision with a pre-existing container.
// Removal is destructive and irreversible, so it happens only with --force
// or an explicit confirmation; declining aborts the whole deployment.
func ReconcileExisting(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig) error {
	logger := otelzap.Ctx(rc.Ctx)

	existing, err := docker.FindContainerByName(rc.Ctx, cli, cfg.Name)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	logger.Warn("⚠️ Container with this name already exists",
		zap.String("name", cfg.Name),
		zap.String("id", existing.ID[:12]),
		zap.String("state", existing.State))

	remove := cfg.Force
	if !remove {
		if cfg.NonInteractive || !interaction.IsTTY() {
			return nifi_err.NewExpectedError(rc.Ctx,
				cerr.Newf("container %q already exists; rerun with --force to replace it", cfg.Name))
		}
		remove = interaction.PromptYesNo(rc.Ctx,
			fmt.Sprintf("Container %q already exists (%s). Delete it?", cfg.Name, existing.State), false)
	}

	if !remove {
		return nifi_err.NewExpectedError(rc.Ctx,
			cerr.Newf("deployment aborted: container %q left in place", cfg.Name))
	}

	if err := docker.RemoveContainer(rc.Ctx, cli, existing.ID); err != nil {
		return err
	}

	logger.Info("✅ Existing container removed", zap.String("name", cfg.Name))
	return nil
}
