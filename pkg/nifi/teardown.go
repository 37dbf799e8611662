// pkg/nifi/teardown.go

package nifi

import (
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/docker/docker/client"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Teardown stops and removes the deployment's container and, when asked,
// purges its volumes. Purging destroys flow state and repositories, so it is
// confirmed unless --force is set.
func Teardown(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig, purgeVolumes bool) error {
	logger := otelzap.Ctx(rc.Ctx)

	existing, err := docker.FindContainerByName(rc.Ctx, cli, cfg.Name)
	if err != nil {
		return err
	}

	if existing == nil {
		logger.Info("No container to remove", zap.String("name", cfg.Name))
	} else {
		if existing.State == "running" {
			if err := docker.StopContainer(rc.Ctx, cli, existing.ID); err != nil {
				return err
			}
		}
		if err := docker.RemoveContainer(rc.Ctx, cli, existing.ID); err != nil {
			return err
		}
		logger.Info("✅ Container removed", zap.String("name", cfg.Name))
	}

	if !purgeVolumes {
		return nil
	}

	if !cfg.Force {
		if cfg.NonInteractive || !interaction.IsTTY() {
			return nifi_err.NewExpectedError(rc.Ctx,
				cerr.New("refusing to purge volumes without --force in non-interactive mode"))
		}
		if !interaction.PromptYesNo(rc.Ctx,
			"Purge all persistent volumes? This destroys flow state and repositories", false) {
			return nifi_err.NewExpectedError(rc.Ctx, cerr.New("volume purge declined"))
		}
	}

	if err := docker.RemoveVolumes(rc.Ctx, cli, cfg.VolumeNames(), true); err != nil {
		return cerr.Wrap(err, "purging volumes")
	}

	logger.Info("✅ Volumes purged", zap.Strings("volumes", cfg.VolumeNames()))
	return nil
}
