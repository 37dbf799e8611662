// cmd/delete/nifi.go

package delete

import (
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_cli"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var purgeVolumes bool

var nifiCmd = &cobra.Command{
	Use:   "nifi",
	Short: "Stop and remove a NiFi deployment",
	Long: `Stop and remove the NiFi container. With --purge-volumes the eight
persistent volumes are deleted as well; that destroys flow state and
repositories and is confirmed unless --force is set.`,
	RunE: nifi_cli.Wrap(func(rc *nifi_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

		cfg, err := nifi.LoadConfig(rc, cmd)
		if err != nil {
			return err
		}

		cli, err := docker.New(rc.Ctx)
		if err != nil {
			return cerr.Wrap(err, "creating Docker client")
		}
		defer func() {
			if err := cli.Close(); err != nil {
				logger.Warn("Failed to close Docker client", zap.Error(err))
			}
		}()

		if err := docker.Ping(rc.Ctx, cli); err != nil {
			return cerr.Wrap(err, "Docker daemon is not reachable")
		}

		return nifi.Teardown(rc, cli, cfg, purgeVolumes)
	}),
}

func init() {
	nifi.RegisterFlags(nifiCmd)
	nifiCmd.Flags().BoolVar(&purgeVolumes, "purge-volumes", false, "Also delete the deployment's persistent volumes")
	DeleteCmd.AddCommand(nifiCmd)
}
