// Package auth loads the stored GNS3 credential used to authenticate API
// requests.
//
// The credential file holds the response of a GNS3 login, a JSON object with
// an "access_token" field (comments and trailing commas are tolerated), or a
// bare token on a single line. The file is read once per command invocation.
package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/jsonc"
)

// ErrNoKey is returned when the credential file does not exist.
var ErrNoKey = errors.New("no stored credential")

// Key is the stored credential.
type Key struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// LoadKey reads the credential file at path. A missing file yields ErrNoKey
// so callers can continue unauthenticated; any other problem is an error.
func LoadKey(path string) (*Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNoKey, path)
		}
		return nil, fmt.Errorf("failed to read key file %s: %w", path, err)
	}

	return ParseKey(data)
}

// ParseKey decodes the content of a credential file.
func ParseKey(data []byte) (*Key, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("key file is empty")
	}

	if trimmed[0] != '{' {
		if bytes.ContainsAny(trimmed, " \t\r\n") {
			return nil, fmt.Errorf("key file must hold a JSON object or a single token")
		}
		return &Key{AccessToken: string(trimmed), TokenType: "bearer"}, nil
	}

	var key Key
	if err := json.Unmarshal(jsonc.ToJSON(trimmed), &key); err != nil {
		return nil, fmt.Errorf("failed to parse key file: %w", err)
	}
	if key.AccessToken == "" {
		return nil, fmt.Errorf("key file has no access_token")
	}
	return &key, nil
}
