// pkg/nifi/deploy.go
//
// The two launchers. Exactly one runs per deployment and both are terminal:
// once the container starts (or any step fails) the workflow ends. There is
// no retry and no rollback of volumes or images already created.

package nifi

import (
	"fmt"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Deploy dispatches to the launcher selected by the destination.
func Deploy(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig) error {
	switch cfg.Destination {
	case DestinationLocalhost:
		return deployHTTP(rc, cli, cfg)
	case DestinationServer:
		return deployTLS(rc, cli, cfg)
	default:
		// Unreachable after config validation; kept as a guard.
		return cerr.Newf("unsupported destination %q", cfg.Destination)
	}
}

// hostIP translates a bind address into the host IP form the daemon expects.
func hostIP(bindAddress string) string {
	if bindAddress == "localhost" {
		return "127.0.0.1"
	}
	return bindAddress
}

// portConfig builds the exposed-port set and host bindings: the chosen web
// port on webHostIP, auxiliary ports on all interfaces.
func portConfig(webPort int, webHostIP string, aux []int) (nat.PortSet, nat.PortMap) {
	exposed := nat.PortSet{}
	bindings := nat.PortMap{}

	web := nat.Port(fmt.Sprintf("%d/tcp", webPort))
	exposed[web] = struct{}{}
	bindings[web] = []nat.PortBinding{{HostIP: webHostIP, HostPort: strconv.Itoa(webPort)}}

	for _, p := range aux {
		port := nat.Port(fmt.Sprintf("%d/tcp", p))
		exposed[port] = struct{}{}
		bindings[port] = []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: strconv.Itoa(p)}}
	}

	return exposed, bindings
}

// startContainer creates and starts the NiFi container and logs its identity.
func startContainer(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig,
	image string, env []string, exposed nat.PortSet, bindings nat.PortMap,
) error {
	logger := otelzap.Ctx(rc.Ctx)

	resp, err := cli.ContainerCreate(rc.Ctx,
		&container.Config{
			Image:        image,
			Env:          env,
			ExposedPorts: exposed,
		},
		&container.HostConfig{
			PortBindings: bindings,
			Mounts:       cfg.VolumeMounts(),
		},
		&network.NetworkingConfig{},
		&ocispec.Platform{},
		cfg.Name)
	if err != nil {
		return cerr.Wrapf(err, "creating container %s", cfg.Name)
	}

	if err := cli.ContainerStart(rc.Ctx, resp.ID, container.StartOptions{}); err != nil {
		return cerr.Wrapf(err, "starting container %s", cfg.Name)
	}

	logger.Info("✅ NiFi container started",
		zap.String("name", cfg.Name),
		zap.String("id", resp.ID[:12]),
		zap.String("image", image),
		zap.Int("port", cfg.Port))

	return nil
}

// deployHTTP starts NiFi directly from the upstream image with plaintext HTTP.
func deployHTTP(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Deploying NiFi over HTTP",
		zap.String("image", cfg.Image),
		zap.String("bind_address", cfg.BindAddress),
		zap.Int("port", cfg.Port))

	present, err := docker.ImageExists(rc.Ctx, cli, cfg.Image)
	if err != nil {
		return err
	}
	if !present {
		if err := docker.PullImage(rc.Ctx, cli, cfg.Image); err != nil {
			return err
		}
	}

	env := []string{
		fmt.Sprintf("NIFI_WEB_HTTP_PORT=%d", cfg.Port),
		"SINGLE_USER_CREDENTIALS_USERNAME=" + cfg.Username,
		"SINGLE_USER_CREDENTIALS_PASSWORD=" + cfg.Password,
	}

	exposed, bindings := portConfig(cfg.Port, hostIP(cfg.BindAddress), auxiliaryPorts)
	return startContainer(rc, cli, cfg, cfg.Image, env, exposed, bindings)
}

// deployTLS builds the derived TLS image and starts NiFi from it.
func deployTLS(rc *nifi_io.RuntimeContext, cli *client.Client, cfg *DeploymentConfig) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("Deploying NiFi over TLS",
		zap.String("image", cfg.Image),
		zap.String("proxy_host", cfg.ProxyHost),
		zap.Int("port", cfg.Port))

	buildContext, err := BuildContext(cfg)
	if err != nil {
		return err
	}

	tag := cfg.TLSImageTag()
	if err := docker.BuildImage(rc.Ctx, cli, buildContext, dockerfileName, tag); err != nil {
		return err
	}

	// Credentials ride in the image environment already; repeating them at
	// run time keeps `docker inspect` output consistent with the HTTP path.
	env := []string{
		"SINGLE_USER_CREDENTIALS_USERNAME=" + cfg.Username,
		"SINGLE_USER_CREDENTIALS_PASSWORD=" + cfg.Password,
	}

	exposed, bindings := portConfig(cfg.Port, "0.0.0.0", auxiliaryPorts[:1])
	return startContainer(rc, cli, cfg, tag, env, exposed, bindings)
}
