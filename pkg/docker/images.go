// pkg/docker/images.go
//
// Image pull and build through the Docker Engine API. Both operations return
// a JSON event stream; errors surface only inside that stream, so it is
// decoded line by line instead of being discarded.

package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	cerr "github.com/cockroachdb/errors"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// streamEvent is the subset of the Docker progress stream nifictl cares about.
type streamEvent struct {
	Status      string `json:"status"`
	Stream      string `json:"stream"`
	Error       string `json:"error"`
	ErrorDetail struct {
		Message string `json:"message"`
	} `json:"errorDetail"`
}

// drainStream consumes a pull/build event stream, logging progress at debug
// level and returning the first in-stream error.
func drainStream(ctx context.Context, r io.Reader, op string) error {
	logger := otelzap.Ctx(ctx)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event streamEvent
		if err := json.Unmarshal(line, &event); err != nil {
			// Some daemons interleave non-JSON noise; skip it.
			continue
		}

		if event.Error != "" {
			return cerr.Newf("%s failed: %s", op, event.Error)
		}
		if event.ErrorDetail.Message != "" {
			return cerr.Newf("%s failed: %s", op, event.ErrorDetail.Message)
		}

		switch {
		case event.Stream != "":
			logger.Debug("Docker "+op, zap.String("output", event.Stream))
		case event.Status != "":
			logger.Debug("Docker "+op, zap.String("status", event.Status))
		}
	}

	return scanner.Err()
}

// ImageExists reports whether an image with the given reference is present locally.
func ImageExists(ctx context.Context, cli *client.Client, ref string) (bool, error) {
	images, err := cli.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", ref)),
	})
	if err != nil {
		return false, cerr.Wrap(err, "listing images")
	}
	return len(images) > 0, nil
}

// PullImage pulls an image and blocks until the pull completes or fails.
func PullImage(ctx context.Context, cli *client.Client, ref string) error {
	otelzap.Ctx(ctx).Info("Pulling image", zap.String("image", ref))

	reader, err := cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return cerr.Wrapf(err, "pulling image %s", ref)
	}
	defer func() {
		_ = reader.Close()
	}()

	return drainStream(ctx, reader, "pull")
}

// BuildImage builds an image from a tar build context and tags it. The
// context must contain the Dockerfile at the path named by dockerfile.
func BuildImage(ctx context.Context, cli *client.Client, buildContext io.Reader, dockerfile, tag string) error {
	otelzap.Ctx(ctx).Info("Building image", zap.String("tag", tag), zap.String("dockerfile", dockerfile))

	resp, err := cli.ImageBuild(ctx, buildContext, types.ImageBuildOptions{
		Tags:       []string{tag},
		Dockerfile: dockerfile,
		Remove:     true,
	})
	if err != nil {
		return cerr.Wrapf(err, "building image %s", tag)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return drainStream(ctx, resp.Body, "build")
}
