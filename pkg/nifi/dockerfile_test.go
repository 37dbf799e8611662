// pkg/nifi/dockerfile_test.go

package nifi

import (
	"archive/tar"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tlsConfig() *DeploymentConfig {
	return &DeploymentConfig{
		Name:           "nifi",
		Destination:    DestinationServer,
		Image:          DefaultImage,
		Port:           8443,
		ProxyHost:      "nifi.example.com",
		Username:       "admin",
		Password:       "adminPass!234",
		KeystorePath:   "keystore.pkcs12",
		TruststorePath: "truststore.pkcs12",
		StorePassword:  "Vq2!storePass9xy",
	}
}

func TestRenderDockerfile(t *testing.T) {
	out, err := RenderDockerfile(tlsConfig())
	require.NoError(t, err)

	for _, line := range []string{
		"FROM apache/nifi:latest",
		"USER root",
		"ENV NIFI_WEB_HTTPS_PORT=8443",
		"ENV NIFI_WEB_PROXY_HOST=nifi.example.com",
		"ENV NIFI_SECURITY_USER_AUTHORIZER=single-user-authorizer",
		"ENV NIFI_SECURITY_USER_LOGIN_IDENTITY_PROVIDER=single-user-provider",
		"ENV SINGLE_USER_CREDENTIALS_USERNAME=admin",
		"ENV SINGLE_USER_CREDENTIALS_PASSWORD=adminPass!234",
		"ENV INITIAL_ADMIN_IDENTITY=CN=admin,OU=NIFI",
		"ENV AUTH=tls",
		"ENV KEYSTORE_PATH=/opt/certs/keystore.pkcs12",
		"ENV KEYSTORE_TYPE=PKCS12",
		"ENV KEYSTORE_PASSWORD=Vq2!storePass9xy",
		"ENV TRUSTSTORE_PATH=/opt/certs/truststore.pkcs12",
		"ENV TRUSTSTORE_TYPE=PKCS12",
		"ENV TRUSTSTORE_PASSWORD=Vq2!storePass9xy",
		"COPY keystore.pkcs12 /opt/certs/keystore.pkcs12",
		"COPY truststore.pkcs12 /opt/certs/truststore.pkcs12",
	} {
		assert.Contains(t, out, line)
	}
}

func TestRenderDockerfileUsesConfiguredStorePassword(t *testing.T) {
	cfg := tlsConfig()
	cfg.StorePassword = "another-store-secret"

	out, err := RenderDockerfile(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "KEYSTORE_PASSWORD=another-store-secret")
	assert.NotContains(t, out, "Vq2!storePass9xy")
}

func TestVerifyTLSMaterial(t *testing.T) {
	rc := nifi_io.NewContext(context.Background(), "test")
	dir := t.TempDir()

	cfg := tlsConfig()
	cfg.KeystorePath = filepath.Join(dir, "keystore.pkcs12")
	cfg.TruststorePath = filepath.Join(dir, "truststore.pkcs12")

	t.Run("missing keystore aborts", func(t *testing.T) {
		err := VerifyTLSMaterial(rc, cfg)
		require.Error(t, err)
		assert.True(t, nifi_err.IsExpectedUserError(err))
	})

	require.NoError(t, os.WriteFile(cfg.KeystorePath, []byte("ks"), 0o600))

	t.Run("missing truststore aborts", func(t *testing.T) {
		require.Error(t, VerifyTLSMaterial(rc, cfg))
	})

	require.NoError(t, os.WriteFile(cfg.TruststorePath, []byte("ts"), 0o600))

	t.Run("both stores present", func(t *testing.T) {
		require.NoError(t, VerifyTLSMaterial(rc, cfg))
	})

	t.Run("directory instead of file", func(t *testing.T) {
		dirCfg := tlsConfig()
		dirCfg.KeystorePath = dir
		dirCfg.TruststorePath = cfg.TruststorePath
		require.Error(t, VerifyTLSMaterial(rc, dirCfg))
	})
}

func TestBuildContext(t *testing.T) {
	dir := t.TempDir()
	cfg := tlsConfig()
	cfg.KeystorePath = filepath.Join(dir, "keystore.pkcs12")
	cfg.TruststorePath = filepath.Join(dir, "truststore.pkcs12")
	require.NoError(t, os.WriteFile(cfg.KeystorePath, []byte("keystore-bytes"), 0o600))
	require.NoError(t, os.WriteFile(cfg.TruststorePath, []byte("truststore-bytes"), 0o600))

	buildContext, err := BuildContext(cfg)
	require.NoError(t, err)

	entries := map[string][]byte{}
	tr := tar.NewReader(buildContext)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		content, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[hdr.Name] = content
	}

	require.Len(t, entries, 3)
	assert.Contains(t, string(entries["Dockerfile"]), "FROM apache/nifi:latest")
	assert.Equal(t, []byte("keystore-bytes"), entries["keystore.pkcs12"])
	assert.Equal(t, []byte("truststore-bytes"), entries["truststore.pkcs12"])
}

func TestBuildContextMissingStore(t *testing.T) {
	cfg := tlsConfig()
	cfg.KeystorePath = filepath.Join(t.TempDir(), "nope.pkcs12")
	cfg.TruststorePath = cfg.KeystorePath

	_, err := BuildContext(cfg)
	require.Error(t, err)
}
