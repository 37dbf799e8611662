// pkg/docker/volumes.go

package docker

import (
	"context"

	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// EnsureVolume is an idempotent volume create: an existing volume with the
// same name is reused rather than treated as a conflict.
func EnsureVolume(ctx context.Context, cli *client.Client, name string) (string, error) {
	existing, err := cli.VolumeInspect(ctx, name)
	if err == nil {
		otelzap.Ctx(ctx).Debug("Volume already exists, reusing",
			zap.String("name", existing.Name),
			zap.String("mountpoint", existing.Mountpoint))
		return existing.Name, nil
	}

	created, err := cli.VolumeCreate(ctx, volume.CreateOptions{
		Name: name,
	})
	if err != nil {
		return "", err
	}

	otelzap.Ctx(ctx).Info("Volume created",
		zap.String("name", created.Name),
		zap.String("mountpoint", created.Mountpoint))

	return created.Name, nil
}

// RemoveVolumes removes the named volumes, continuing past individual
// failures and returning the last error seen.
func RemoveVolumes(ctx context.Context, cli *client.Client, names []string, force bool) error {
	var lastErr error
	for _, name := range names {
		if err := cli.VolumeRemove(ctx, name, force); err != nil {
			otelzap.Ctx(ctx).Warn("Failed to remove volume",
				zap.String("name", name), zap.Error(err))
			lastErr = err
			continue
		}
		otelzap.Ctx(ctx).Info("Volume removed", zap.String("name", name))
	}
	return lastErr
}
