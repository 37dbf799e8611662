// cmd/inspect/nifi.go

package inspect

import (
	"encoding/json"
	"fmt"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_cli"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var nifiCmd = &cobra.Command{
	Use:   "nifi",
	Short: "Report the state of a NiFi deployment",
	Long: `Report the NiFi container's state, image and published ports, and which
of its persistent volumes exist. Output is JSON on stdout so it can be piped
into jq or other tooling.`,
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

		report, err := nifi.Status(rc, cli, cfg)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return cerr.Wrap(err, "encoding status report")
		}
		fmt.Println(string(out))
		return nil
	}),
}

func init() {
	nifi.RegisterFlags(nifiCmd)
	InspectCmd.AddCommand(nifiCmd)
}
