// pkg/nifi/types.go

package nifi

import (
	"fmt"
	"path"

	"github.com/docker/docker/api/types/mount"
)

// Destination selects the deployment strategy: plaintext HTTP for local
// development, or TLS with a locally built image for servers. Matching is
// exact and case-sensitive.
type Destination string

const (
	DestinationLocalhost Destination = "localhost"
	DestinationServer    Destination = "server"
)

const (
	DefaultName  = "nifi"
	DefaultImage = "apache/nifi:latest"
	DefaultPort  = 8443

	DefaultKeystoreFile   = "keystore.pkcs12"
	DefaultTruststoreFile = "truststore.pkcs12"

	// NiFi single-user mode identifiers, fixed by upstream.
	authorizerID    = "single-user-authorizer"
	loginProviderID = "single-user-provider"
	adminIdentity   = "CN=admin,OU=NIFI"
	storeType       = "PKCS12"

	nifiHome     = "/opt/nifi/nifi-current"
	imageCertDir = "/opt/certs"
)

// Auxiliary ports NiFi site-to-site and load balancing listen on.
var auxiliaryPorts = []int{5050, 5051, 5052}

// DeploymentConfig is built from flags, environment, config file and prompts,
// and is read-only once a launcher consumes it.
type DeploymentConfig struct {
	Name        string      `mapstructure:"name" validate:"required,hostname_rfc1123"`
	Destination Destination `mapstructure:"destination" validate:"required,oneof=localhost server"`
	Image       string      `mapstructure:"image" validate:"required"`
	Port        int         `mapstructure:"port" validate:"required,min=1,max=65535"`

	// HTTP path: interface the published web port binds to.
	BindAddress string `mapstructure:"bind_address" validate:"omitempty,oneof=localhost 0.0.0.0"`

	// TLS path: hostname NiFi accepts proxied requests for.
	ProxyHost string `mapstructure:"proxy_host"`

	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`

	KeystorePath   string `mapstructure:"keystore"`
	TruststorePath string `mapstructure:"truststore"`
	StorePassword  string `mapstructure:"store_password"`

	Force          bool `mapstructure:"force"`
	NonInteractive bool `mapstructure:"non_interactive"`
}

// TLSImageTag is the tag of the locally built TLS image.
func (c *DeploymentConfig) TLSImageTag() string {
	return c.Name + "-tls"
}

// volumeRole pairs a volume name suffix with its mount target inside the container.
type volumeRole struct {
	Suffix string
	Target string
}

// The eight persistent volumes every deployment gets, regardless of destination.
var volumeRoles = []volumeRole{
	{"database_repository", path.Join(nifiHome, "database_repository")},
	{"flowfile_repository", path.Join(nifiHome, "flowfile_repository")},
	{"content_repository", path.Join(nifiHome, "content_repository")},
	{"provenance_repository", path.Join(nifiHome, "provenance_repository")},
	{"state", path.Join(nifiHome, "state")},
	{"logs", path.Join(nifiHome, "logs")},
	{"conf", path.Join(nifiHome, "conf")},
	{"certs", path.Join(nifiHome, "certs")},
}

// VolumeNames returns the eight volume names, prefixed with the deployment
// name so that independent deployments never collide.
func (c *DeploymentConfig) VolumeNames() []string {
	names := make([]string, 0, len(volumeRoles))
	for _, role := range volumeRoles {
		names = append(names, fmt.Sprintf("%s_%s", c.Name, role.Suffix))
	}
	return names
}

// VolumeMounts returns the mount set for the NiFi container.
func (c *DeploymentConfig) VolumeMounts() []mount.Mount {
	mounts := make([]mount.Mount, 0, len(volumeRoles))
	for _, role := range volumeRoles {
		mounts = append(mounts, mount.Mount{
			Type:   mount.TypeVolume,
			Source: fmt.Sprintf("%s_%s", c.Name, role.Suffix),
			Target: role.Target,
		})
	}
	return mounts
}
