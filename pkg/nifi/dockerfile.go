// pkg/nifi/dockerfile.go
//
// The TLS launcher builds a derived image so the keystore/truststore and the
// TLS environment travel with it. The Dockerfile and both stores are packed
// into an in-memory tar build context; nothing is written to the working
// directory.

package nifi

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_err"
	"github.com/CodeMonkeyCybersecurity/nifictl/pkg/nifi_io"
	cerr "github.com/cockroachdb/errors"
)

const dockerfileName = "Dockerfile"

// Store paths inside the image, referenced by the NiFi TLS environment.
const (
	imageKeystorePath   = imageCertDir + "/keystore.pkcs12"
	imageTruststorePath = imageCertDir + "/truststore.pkcs12"
)

var dockerfileTmpl = template.Must(template.New(dockerfileName).Parse(`FROM {{ .Image }}

USER root

ENV NIFI_WEB_HTTPS_PORT={{ .Port }}
ENV NIFI_WEB_PROXY_HOST={{ .ProxyHost }}
ENV NIFI_SECURITY_USER_AUTHORIZER={{ .Authorizer }}
ENV NIFI_SECURITY_USER_LOGIN_IDENTITY_PROVIDER={{ .LoginProvider }}
ENV SINGLE_USER_CREDENTIALS_USERNAME={{ .Username }}
ENV SINGLE_USER_CREDENTIALS_PASSWORD={{ .Password }}
ENV INITIAL_ADMIN_IDENTITY={{ .AdminIdentity }}
ENV AUTH=tls
ENV KEYSTORE_PATH={{ .KeystorePath }}
ENV KEYSTORE_TYPE={{ .StoreType }}
ENV KEYSTORE_PASSWORD={{ .StorePassword }}
ENV TRUSTSTORE_PATH={{ .TruststorePath }}
ENV TRUSTSTORE_TYPE={{ .StoreType }}
ENV TRUSTSTORE_PASSWORD={{ .StorePassword }}

COPY keystore.pkcs12 {{ .KeystorePath }}
COPY truststore.pkcs12 {{ .TruststorePath }}
`))

type dockerfileData struct {
	Image          string
	Port           int
	ProxyHost      string
	Authorizer     string
	LoginProvider  string
	Username       string
	Password       string
	AdminIdentity  string
	KeystorePath   string
	TruststorePath string
	StoreType      string
	StorePassword  string
}

// RenderDockerfile produces the build recipe for the TLS image.
func RenderDockerfile(cfg *DeploymentConfig) (string, error) {
	var buf bytes.Buffer
	err := dockerfileTmpl.Execute(&buf, dockerfileData{
		Image:          cfg.Image,
		Port:           cfg.Port,
		ProxyHost:      cfg.ProxyHost,
		Authorizer:     authorizerID,
		LoginProvider:  loginProviderID,
		Username:       cfg.Username,
		Password:       cfg.Password,
		AdminIdentity:  adminIdentity,
		KeystorePath:   imageKeystorePath,
		TruststorePath: imageTruststorePath,
		StoreType:      storeType,
		StorePassword:  cfg.StorePassword,
	})
	if err != nil {
		return "", cerr.Wrap(err, "rendering Dockerfile")
	}
	return buf.String(), nil
}

// VerifyTLSMaterial checks both store files exist before anything else in the
// TLS path runs; a missing store aborts before any prompting.
func VerifyTLSMaterial(rc *nifi_io.RuntimeContext, cfg *DeploymentConfig) error {
	for _, p := range []string{cfg.KeystorePath, cfg.TruststorePath} {
		info, err := os.Stat(p)
		if err != nil {
			return nifi_err.NewExpectedError(rc.Ctx,
				cerr.Newf("TLS material not found at %s (generate the PKCS12 stores first)", p))
		}
		if info.IsDir() {
			return nifi_err.NewExpectedError(rc.Ctx,
				cerr.Newf("TLS material at %s is a directory, expected a PKCS12 file", p))
		}
	}
	return nil
}

// BuildContext packs the rendered Dockerfile and both stores into a tar
// stream suitable for the Engine API image build.
func BuildContext(cfg *DeploymentConfig) (io.Reader, error) {
	dockerfile, err := RenderDockerfile(cfg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	writeFile := func(name string, content []byte) error {
		if err := tw.WriteHeader(&tar.Header{
			Name:    name,
			Size:    int64(len(content)),
			Mode:    0o600,
			ModTime: time.Now(),
			Format:  tar.FormatPAX,
		}); err != nil {
			return cerr.Wrapf(err, "writing tar header for %s", name)
		}
		if _, err := tw.Write(content); err != nil {
			return cerr.Wrapf(err, "writing %s to build context", name)
		}
		return nil
	}

	if err := writeFile(dockerfileName, []byte(dockerfile)); err != nil {
		return nil, err
	}

	for name, path := range map[string]string{
		"keystore.pkcs12":   cfg.KeystorePath,
		"truststore.pkcs12": cfg.TruststorePath,
	} {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, cerr.Wrapf(err, "reading %s", path)
		}
		if err := writeFile(name, content); err != nil {
			return nil, err
		}
	}

	if err := tw.Close(); err != nil {
		return nil, cerr.Wrap(err, "closing build context")
	}

	return &buf, nil
}
