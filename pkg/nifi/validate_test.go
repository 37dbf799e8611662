// pkg/nifi/validate_test.go

package nifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default web port", "8443", false},
		{"low port", "1", false},
		{"high port", "65535", false},
		{"zero", "0", true},
		{"out of range", "65536", true},
		{"empty", "", true},
		{"letters", "abc", true},
		{"mixed", "80a", true},
		{"negative", "-1", true},
		{"whitespace", " 8443", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePort(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "input %q", tt.input)
			} else {
				assert.NoError(t, err, "input %q", tt.input)
			}
		})
	}
}

func TestValidateProxyHost(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain hostname", "localhost", false},
		{"dotted hostname", "host.example.com", false},
		{"hostname with port", "host.example.com:8443", false},
		{"ipv4", "10.0.0.5", false},
		{"ipv4 with port", "10.0.0.5:8443", false},
		{"single label with digits", "nifi01", false},
		{"empty", "", true},
		{"embedded space", "bad host", true},
		{"shell metacharacter", "host;rm", true},
		{"bad port suffix", "host.example.com:99999", true},
		{"trailing dot label", "host.", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProxyHost(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "input %q", tt.input)
			} else {
				assert.NoError(t, err, "input %q", tt.input)
			}
		})
	}
}

func TestValidateBindAddress(t *testing.T) {
	assert.NoError(t, ValidateBindAddress("localhost"))
	assert.NoError(t, ValidateBindAddress("0.0.0.0"))

	for _, input := range []string{"127.0.0.1", "Localhost", "LOCALHOST", "::", "", "0.0.0.0 "} {
		assert.Error(t, ValidateBindAddress(input), "input %q", input)
	}
}

func TestValidateNonEmpty(t *testing.T) {
	assert.Error(t, ValidateNonEmpty(""))
	assert.Error(t, ValidateNonEmpty("   "))
	assert.Error(t, ValidateNonEmpty("\t\n"))
	assert.NoError(t, ValidateNonEmpty("admin"))
	assert.NoError(t, ValidateNonEmpty(" x "))
}

func TestValidateDestination(t *testing.T) {
	assert.NoError(t, ValidateDestination("localhost"))
	assert.NoError(t, ValidateDestination("server"))

	// Matching is case-sensitive: "Server" falls through to the invalid branch.
	for _, input := range []string{"Server", "LOCALHOST", "remote", ""} {
		assert.Error(t, ValidateDestination(input), "input %q", input)
	}
}

func TestDeploymentConfigValidate(t *testing.T) {
	base := func() *DeploymentConfig {
		return &DeploymentConfig{
			Name:        "nifi",
			Destination: DestinationLocalhost,
			Image:       DefaultImage,
			Port:        DefaultPort,
			BindAddress: "localhost",
			Username:    "admin",
			Password:    "s3cret-pass",
		}
	}

	t.Run("valid http config", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("wrong case destination rejected", func(t *testing.T) {
		cfg := base()
		cfg.Destination = "Server"
		require.Error(t, cfg.Validate())
	})

	t.Run("missing credentials rejected", func(t *testing.T) {
		cfg := base()
		cfg.Password = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("http path requires bind address", func(t *testing.T) {
		cfg := base()
		cfg.BindAddress = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("valid tls config", func(t *testing.T) {
		cfg := base()
		cfg.Destination = DestinationServer
		cfg.BindAddress = ""
		cfg.ProxyHost = "nifi.example.com:8443"
		cfg.KeystorePath = "keystore.pkcs12"
		cfg.TruststorePath = "truststore.pkcs12"
		cfg.StorePassword = "generated-elsewhere"
		require.NoError(t, cfg.Validate())
	})

	t.Run("tls path requires store password", func(t *testing.T) {
		cfg := base()
		cfg.Destination = DestinationServer
		cfg.BindAddress = ""
		cfg.ProxyHost = "nifi.example.com"
		cfg.KeystorePath = "keystore.pkcs12"
		cfg.TruststorePath = "truststore.pkcs12"
		require.Error(t, cfg.Validate())
	})

	t.Run("tls path rejects unsafe proxy host", func(t *testing.T) {
		cfg := base()
		cfg.Destination = DestinationServer
		cfg.BindAddress = ""
		cfg.ProxyHost = "host;rm -rf /"
		cfg.KeystorePath = "keystore.pkcs12"
		cfg.TruststorePath = "truststore.pkcs12"
		cfg.StorePassword = "x9!Abcdefgh"
		require.Error(t, cfg.Validate())
	})
}
