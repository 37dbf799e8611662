// pkg/nifi/types_test.go

package nifi

import (
	"strings"
	"testing"

	"github.com/docker/docker/api/types/mount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeNames(t *testing.T) {
	cfg := &DeploymentConfig{Name: "nifi"}
	names := cfg.VolumeNames()

	require.Len(t, names, 8)
	for _, name := range names {
		assert.True(t, strings.HasPrefix(name, "nifi_"), "volume %q not prefixed with deployment name", name)
	}
	assert.Contains(t, names, "nifi_database_repository")
	assert.Contains(t, names, "nifi_flowfile_repository")
	assert.Contains(t, names, "nifi_content_repository")
	assert.Contains(t, names, "nifi_provenance_repository")
	assert.Contains(t, names, "nifi_state")
	assert.Contains(t, names, "nifi_logs")
	assert.Contains(t, names, "nifi_conf")
	assert.Contains(t, names, "nifi_certs")
}

func TestVolumeNamesIndependentDeployments(t *testing.T) {
	a := (&DeploymentConfig{Name: "nifi-dev"}).VolumeNames()
	b := (&DeploymentConfig{Name: "nifi-prod"}).VolumeNames()

	seen := make(map[string]bool, len(a))
	for _, name := range a {
		seen[name] = true
	}
	for _, name := range b {
		assert.False(t, seen[name], "deployments share volume %q", name)
	}
}

func TestVolumeMounts(t *testing.T) {
	cfg := &DeploymentConfig{Name: "nifi"}
	mounts := cfg.VolumeMounts()

	require.Len(t, mounts, 8)
	targets := make(map[string]string, len(mounts))
	for _, m := range mounts {
		assert.Equal(t, mount.TypeVolume, m.Type)
		assert.True(t, strings.HasPrefix(m.Target, "/opt/nifi/nifi-current/"), "target %q outside NiFi home", m.Target)
		targets[m.Source] = m.Target
	}
	assert.Equal(t, "/opt/nifi/nifi-current/conf", targets["nifi_conf"])
	assert.Equal(t, "/opt/nifi/nifi-current/certs", targets["nifi_certs"])
	assert.Equal(t, "/opt/nifi/nifi-current/state", targets["nifi_state"])
}

func TestTLSImageTag(t *testing.T) {
	assert.Equal(t, "nifi-tls", (&DeploymentConfig{Name: "nifi"}).TLSImageTag())
	assert.Equal(t, "edge-tls", (&DeploymentConfig{Name: "edge"}).TLSImageTag())
}
