// pkg/nifi/validate.go
//
// Pure input validators. Each returns a descriptive error and has no side
// effects; callers decide whether to re-prompt or abort.

package nifi

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	portRe = regexp.MustCompile(`^[0-9]+$`)

	// Hostname labels per RFC 1123: alphanumerics and hyphens, dot-separated.
	hostnameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)
)

// ValidateNonEmpty ensures the input is not empty.
func ValidateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input cannot be empty")
	}
	return nil
}

// ValidatePort ensures the input is an all-digit string naming a usable TCP port.
func ValidatePort(input string) error {
	if !portRe.MatchString(input) {
		return errors.New("port must contain only digits")
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %q", input)
	}
	return nil
}

// ValidateProxyHost accepts hostnames, IP addresses, and host:port forms.
func ValidateProxyHost(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("proxy host cannot be empty")
	}
	if strings.ContainsAny(input, " \t`$&|;<>(){}") {
		return errors.New("proxy host contains unsafe characters")
	}

	host := input
	if h, port, err := net.SplitHostPort(input); err == nil {
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("invalid proxy port: %w", err)
		}
		host = h
	}

	if net.ParseIP(host) != nil {
		return nil
	}
	if !hostnameRe.MatchString(host) {
		return fmt.Errorf("invalid proxy host %q", input)
	}
	return nil
}

// ValidateBindAddress accepts exactly "localhost" or "0.0.0.0", the two
// interfaces the plaintext deployment may publish on.
func ValidateBindAddress(input string) error {
	if input == "localhost" || input == "0.0.0.0" {
		return nil
	}
	return fmt.Errorf("bind address must be %q or %q, got %q", "localhost", "0.0.0.0", input)
}

// ValidateDestination ensures the deploy destination is one of the two
// supported values. Matching is case-sensitive: "Server" is rejected.
func ValidateDestination(input string) error {
	switch Destination(input) {
	case DestinationLocalhost, DestinationServer:
		return nil
	default:
		return fmt.Errorf("destination must be %q or %q, got %q",
			DestinationLocalhost, DestinationServer, input)
	}
}

// Validate runs struct-level validation plus the destination-specific rules
// that tags cannot express.
func (c *DeploymentConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	switch c.Destination {
	case DestinationLocalhost:
		if err := ValidateBindAddress(c.BindAddress); err != nil {
			return err
		}
	case DestinationServer:
		if err := ValidateProxyHost(c.ProxyHost); err != nil {
			return err
		}
		if err := ValidateNonEmpty(c.KeystorePath); err != nil {
			return errors.New("keystore path cannot be empty")
		}
		if err := ValidateNonEmpty(c.TruststorePath); err != nil {
			return errors.New("truststore path cannot be empty")
		}
		if err := ValidateNonEmpty(c.StorePassword); err != nil {
			return errors.New("store password cannot be empty")
		}
	}
	return nil
}
