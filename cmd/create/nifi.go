// cmd/create/nifi.go

package create

import (
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/docker"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_cli"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var nifiCmd = &cobra.Command{
	Use:   "nifi",
	Short: "Deploy an Apache NiFi container with persistent volumes",
	Long: `Deploy Apache NiFi onto the local Docker daemon.

The deployment provisions eight named volumes (database, flowfile, content and
provenance repositories, state, logs, conf, certs), reconciles any container
already using the chosen name, and then launches NiFi one of two ways:

LOCALHOST (plaintext HTTP):
- Runs the upstream image directly
- Publishes the web port on localhost or 0.0.0.0 plus the site-to-site ports

SERVER (TLS):
- Requires PKCS12 keystore and truststore files up front
- Builds a derived image embedding the stores and single-user TLS settings
- Publishes the TLS web port plus the primary site-to-site port

Every value can come from flags, NIFICTL_* environment variables, a
nifictl.yaml config file, or interactive prompts. Use --non-interactive for
scripted runs; missing values then fail validation instead of prompting.

Examples:
  # Interactive local deployment
  nifictl create nifi

  # Scripted plaintext deployment
  nifictl create nifi --destination localhost --bind-address 0.0.0.0 \
    --username admin --password "$NIFI_PASSWORD" --non-interactive

  # TLS deployment with stores in the working directory
  nifictl create nifi --destination server --proxy-host nifi.example.com:8443 \
    --username admin --password "$NIFI_PASSWORD" --store-password "$STORE_PASSWORD"`,
	RunE: nifi_cli.Wrap(func(rc *nifi_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		logger := otelzap.Ctx(rc.Ctx)

		cfg, err := nifi.LoadConfig(rc, cmd)
		if err != nil {
			return err
		}

		if err := cfg.ResolveDestination(rc); err != nil {
			return err
		}

		// TLS material is checked before any further prompting so a missing
		// store fails fast instead of after credentials were typed in.
		if cfg.Destination == nifi.DestinationServer {
			if err := nifi.VerifyTLSMaterial(rc, cfg); err != nil {
				return err
			}
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

		// Volumes are provisioned up front for both destinations.
		if err := nifi.EnsureVolumes(rc, cli, cfg); err != nil {
			return err
		}

		if err := nifi.ReconcileExisting(rc, cli, cfg); err != nil {
			return err
		}

		if err := cfg.PromptMissing(rc); err != nil {
			return err
		}
		if err := cfg.EnsureStorePassword(rc); err != nil {
			return err
		}

		if err := cfg.Validate(); err != nil {
			return nifi_err.NewExpectedError(rc.Ctx, cerr.Wrap(err, "invalid deployment configuration"))
		}

		return nifi.Deploy(rc, cli, cfg)
	}),
}

func init() {
	nifi.RegisterFlags(nifiCmd)
	CreateCmd.AddCommand(nifiCmd)
}
