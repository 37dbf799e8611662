// pkg/nifi/volumes.go

package nifi

import (
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/docker/docker/client"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// EnsureVolumes provisions the eight persistent volumes for a deployment.
// It runs before either launcher, regardless of destination, and any
// failure aborts the deployment; volumes already created are left in place.
func EnsureVolumes(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig) error {
	logger := otelzap.Ctx(rc.Ctx)

	names := cfg.VolumeNames()
	logger.Info("Provisioning persistent volumes",
		zap.Int("count", len(names)),
		zap.String("deployment", cfg.Name))

	for _, name := range names {
		if _, err := docker.EnsureVolume(rc.Ctx, cli, name); err != nil {
			return cerr.Wrapf(err, "provisioning volume %s", name)
		}
	}

	return nil
}
