// pkg/nifi/config.go
//
// Configuration resolution. Precedence: flags > NIFICTL_* environment >
// nifictl.yaml > .env > interactive prompts (TTY only, missing values only)
// > defaults. Prompting is just one input adapter; batch runs set
// --non-interactive and rely on upfront validation instead.

package nifi

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// RegisterFlags declares the deployment flags on a command. Flag names use
// dashes; viper keys use underscores.
func RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", DefaultName, "Base name for the container and its volumes")
	cmd.Flags().String("destination", "", "Deploy destination: localhost (HTTP) or server (TLS)")
	cmd.Flags().String("image", DefaultImage, "Upstream NiFi image reference")
	cmd.Flags().Int("port", DefaultPort, "Published web port")
	cmd.Flags().String("bind-address", "", "Interface the HTTP port binds to: localhost or 0.0.0.0")
	cmd.Flags().String("proxy-host", "", "Hostname NiFi accepts proxied requests for (TLS mode)")
	cmd.Flags().String("username", "", "Single-user login username")
	cmd.Flags().String("password", "", "Single-user login password (prompted when omitted)")
	cmd.Flags().String("keystore", DefaultKeystoreFile, "Path to the PKCS12 keystore (TLS mode)")
	cmd.Flags().String("truststore", DefaultTruststoreFile, "Path to the PKCS12 truststore (TLS mode)")
	cmd.Flags().String("store-password", "", "Keystore/truststore password (generated when omitted)")
	cmd.Flags().Bool("force", false, "Replace an existing container without prompting")
	cmd.Flags().Bool("non-interactive", false, "Never prompt; fail on missing values instead")
}

// LoadConfig resolves a DeploymentConfig from every non-interactive source.
func LoadConfig(rc *nifi_io.RuntimeContext, cmd *cobra.Command) (*DeploymentConfig, error) {
	logger := otelzap.Ctx(rc.Ctx)

	// Best effort: a .env beside the working directory is a developer convenience.
	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("nifictl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "nifictl"))
	}

	v.SetEnvPrefix("NIFICTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("name", DefaultName)
	v.SetDefault("image", DefaultImage)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("keystore", DefaultKeystoreFile)
	v.SetDefault("truststore", DefaultTruststoreFile)

	for flagName, key := range map[string]string{
		"name":            "name",
		"destination":     "destination",
		"image":           "image",
		"port":            "port",
		"bind-address":    "bind_address",
		"proxy-host":      "proxy_host",
		"username":        "username",
		"password":        "password",
		"keystore":        "keystore",
		"truststore":      "truststore",
		"store-password":  "store_password",
		"force":           "force",
		"non-interactive": "non_interactive",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flagName)); err != nil {
			return nil, cerr.Wrapf(err, "binding flag %s", flagName)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !cerr.As(err, &notFound) {
			return nil, cerr.Wrap(err, "reading config file")
		}
	} else {
		logger.Debug("Loaded config file", zap.String("path", v.ConfigFileUsed()))
	}

	var cfg DeploymentConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, cerr.Wrap(err, "unmarshalling config")
	}

	return &cfg, nil
}

// ResolveDestination fills in the destination, prompting when allowed, and
// validates it.
func (c *DeploymentConfig) ResolveDestination(rc *nifi_io.RuntimeContext) error {
	if c.Destination == "" && c.canPrompt() {
		input, err := interaction.PromptValidated(rc.Ctx,
			fmt.Sprintf("Deploy destination (%s or %s)", DestinationLocalhost, DestinationServer),
			ValidateDestination)
		if err != nil {
			return err
		}
		c.Destination = Destination(input)
	}

	if err := ValidateDestination(string(c.Destination)); err != nil {
		return nifi_err.NewExpectedError(rc.Ctx, err)
	}
	return nil
}

// PromptMissing interactively collects every value still unset. It is a
// no-op for values already supplied by flags, environment or config file.
func (c *DeploymentConfig) PromptMissing(rc *nifi_io.RuntimeContext) error {
	if !c.canPrompt() {
		return nil
	}

	if c.Port == 0 {
		input, err := interaction.PromptWithDefault(rc.Ctx, "Web port", strconv.Itoa(DefaultPort))
		if err != nil {
			return err
		}
		if err := ValidatePort(input); err != nil {
			return nifi_err.NewExpectedError(rc.Ctx, err)
		}
		c.Port, _ = strconv.Atoi(input)
	}

	switch c.Destination {
	case DestinationLocalhost:
		if c.BindAddress == "" {
			input, err := interaction.PromptValidated(rc.Ctx,
				"Bind address (localhost or 0.0.0.0)", ValidateBindAddress)
			if err != nil {
				return err
			}
			c.BindAddress = input
		}
	case DestinationServer:
		if c.ProxyHost == "" {
			input, err := interaction.PromptValidated(rc.Ctx,
				"Proxy host (hostname, IP, or host:port)", ValidateProxyHost)
			if err != nil {
				return err
			}
			c.ProxyHost = input
		}
	}

	if c.Username == "" {
		input, err := interaction.PromptValidated(rc.Ctx, "NiFi username", ValidateNonEmpty)
		if err != nil {
			return err
		}
		c.Username = input
	}

	if c.Password == "" {
		secret, err := interaction.PromptSecret(rc.Ctx, "NiFi password")
		if err != nil {
			return err
		}
		if err := ValidateNonEmpty(secret); err != nil {
			return nifi_err.NewExpectedError(rc.Ctx, cerr.New("password cannot be empty"))
		}
		c.Password = secret
	}

	return nil
}

// EnsureStorePassword guarantees a store password for the TLS path without
// ever hardcoding one: configured value, interactive prompt, or a generated
// strong password reported to the operator.
func (c *DeploymentConfig) EnsureStorePassword(rc *nifi_io.RuntimeContext) error {
	if c.Destination != DestinationServer || c.StorePassword != "" {
		return nil
	}

	if c.canPrompt() {
		secret, err := interaction.PromptSecret(rc.Ctx, "Keystore/truststore password (empty to generate)")
		if err != nil {
			return err
		}
		c.StorePassword = secret
	}

	if c.StorePassword == "" {
		generated, err := crypto.GeneratePassword(20)
		if err != nil {
			return cerr.Wrap(err, "generating store password")
		}
		c.StorePassword = generated
		// The operator needs this value to open the stores later.
		fmt.Fprintf(os.Stderr, "🔐 Generated keystore/truststore password: %s\n", generated)
		otelzap.Ctx(rc.Ctx).Info("Generated store password (printed to terminal, not logged)")
	}

	return nil
}

func (c *DeploymentConfig) canPrompt() bool {
	return !c.NonInteractive && interaction.IsTTY()
}
