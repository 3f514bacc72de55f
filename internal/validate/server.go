// Package validate provides input validation utilities for gns3util,
// ensuring that server addresses and command inputs are well formed before
// any request goes out.
//
// Implements URL and field validation using the go-playground/validator
// library so that every config check shares one validator instance and one
// error style.
//
// VALIDATION FEATURES:
//   - Server URL: absolute http/https URL with a host
//   - Single fields: any built-in validator tag through ValidateField
//   - Strings and timeouts: required values and positive durations
package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// ServerAddress is the validated form of a GNS3 server URL. Only the scheme
// and host matter for reaching the API; the path is replaced by the API root.
type ServerAddress struct {
	Scheme string `validate:"required,oneof=http https"`
	Host   string `validate:"required,hostname_port|hostname|ip"`
}

// String returns the server address as "scheme://host".
func (sa ServerAddress) String() string {
	return fmt.Sprintf("%s://%s", sa.Scheme, sa.Host)
}

// ParseServerURL parses and validates a GNS3 server URL such as
// "http://127.0.0.1:3080". Trailing slashes and any path are dropped.
func ParseServerURL(raw string) (*ServerAddress, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("server URL cannot be empty")
	}

	if err := validate.Var(raw, "url"); err != nil {
		return nil, fmt.Errorf("invalid server URL '%s': expected format http(s)://host:port", raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL '%s': %w", raw, err)
	}

	addr := &ServerAddress{
		Scheme: strings.ToLower(parsed.Scheme),
		Host:   parsed.Host,
	}

	if err := validate.Struct(addr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return addr, nil
}

// ValidateField validates individual values against specified validation rules using
// the go-playground/validator library.
//
// Example: ValidateField("fzf", "oneof=builtin fzf")
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}
