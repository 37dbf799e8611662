// pkg/docker/containers.go

package docker

import (
	"context"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// FindContainerByName returns the container whose name matches exactly, or
// nil when no such container exists (running or stopped). The daemon's name
// filter is a substring match, so results are re-checked against the full
// name.
func FindContainerByName(ctx context.Context, cli *client.Client, name string) (*container.Summary, error) {
	summaries, err := cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return nil, cerr.Wrap(err, "listing containers")
	}

	for i := range summaries {
		for _, n := range summaries[i].Names {
			if strings.TrimPrefix(n, "/") == name {
				return &summaries[i], nil
			}
		}
	}
	return nil, nil
}

// RemoveContainer force-removes a container by ID, running or not.
func RemoveContainer(ctx context.Context, cli *client.Client, id string) error {
	if err := cli.ContainerRemove(ctx, id, container.RemoveOptions{Force: true}); err != nil {
		return cerr.Wrapf(err, "removing container %s", id)
	}
	otelzap.Ctx(ctx).Info("Container removed", zap.String("id", id))
	return nil
}

// StopContainer stops a container by ID without waiting for a graceful exit.
func StopContainer(ctx context.Context, cli *client.Client, id string) error {
	noWaitTimeout := 0
	if err := cli.ContainerStop(ctx, id, container.StopOptions{Timeout: &noWaitTimeout}); err != nil {
		return cerr.Wrapf(err, "stopping container %s", id)
	}
	return nil
}
