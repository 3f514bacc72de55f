package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// resetGlobal restores the flag defaults between test cases
func resetGlobal() {
	Global.Server = "http://127.0.0.1:3080"
	Global.KeyFile = DefaultKeyFile
	Global.LogLevel = "ERROR"
	Global.RequestTimeout = DefaultRequestTimeout
	Global.Insecure = false
	Global.Selector = DefaultSelector
	Global.NoColor = false
}

// newFlagCommand builds a command carrying the global flags bound to Global
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVarP(&Global.Server, "server", "s", "", "")
	cmd.Flags().StringVar(&Global.KeyFile, "key-file", DefaultKeyFile, "")
	cmd.Flags().StringVar(&Global.Selector, "selector", DefaultSelector, "")
	return cmd
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name        string
		server      string
		expectError bool
		normalized  string
	}{
		{name: "plain http", server: "http://127.0.0.1:3080", normalized: "http://127.0.0.1:3080"},
		{name: "path stripped", server: "https://gns3.lab:3443/v3", normalized: "https://gns3.lab:3443"},
		{name: "empty", server: "", expectError: true},
		{name: "no scheme", server: "127.0.0.1:3080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobal()
			Global.Server = tt.server

			err := ValidateServer()
			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateServer() expected error for %q", tt.server)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateServer() unexpected error: %v", err)
			}
			if Global.Server != tt.normalized {
				t.Errorf("Global.Server = %q, want %q", Global.Server, tt.normalized)
			}
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	resetGlobal()
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		Global.LogLevel = level
		if err := ValidateLogLevel(); err != nil {
			t.Errorf("ValidateLogLevel(%q) unexpected error: %v", level, err)
		}
	}

	Global.LogLevel = "verbose"
	if err := ValidateLogLevel(); err == nil {
		t.Error("ValidateLogLevel(verbose) expected error")
	}
}

func TestValidateSelector(t *testing.T) {
	tests := []struct {
		selector    string
		expectError bool
	}{
		{selector: "builtin"},
		{selector: "fzf"},
		{selector: "", expectError: true},
		{selector: "skim", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			resetGlobal()
			Global.Selector = tt.selector
			err := ValidateSelector()
			if tt.expectError && err == nil {
				t.Errorf("ValidateSelector(%q) expected error", tt.selector)
			}
			if !tt.expectError && err != nil {
				t.Errorf("ValidateSelector(%q) unexpected error: %v", tt.selector, err)
			}
		})
	}
}

func TestValidateTimeouts(t *testing.T) {
	resetGlobal()

	Global.RequestTimeout = 0
	if err := ValidateRequestTimeout(); err == nil || err.Error() != "request timeout must be positive" {
		t.Errorf("ValidateRequestTimeout() = %v, want request timeout must be positive", err)
	}
	Global.RequestTimeout = 5
	if err := ValidateRequestTimeout(); err != nil {
		t.Errorf("ValidateRequestTimeout() unexpected error: %v", err)
	}

	Stream.Timeout = -1
	if err := ValidateStreamTimeout(); err == nil || err.Error() != "notification timeout must be positive" {
		t.Errorf("ValidateStreamTimeout() = %v, want notification timeout must be positive", err)
	}
	Stream.Timeout = DefaultStreamTimeout
	if err := ValidateStreamTimeout(); err != nil {
		t.Errorf("ValidateStreamTimeout() unexpected error: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Run("environment fills unset flags", func(t *testing.T) {
		resetGlobal()
		cmd := newFlagCommand()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatalf("ParseFlags: %v", err)
		}

		t.Setenv("GNS3_SERVER", "http://10.1.1.1:3080")
		t.Setenv("GNS3_KEY_FILE", "/tmp/key")
		t.Setenv("GNS3UTIL_SELECTOR", "fzf")

		if err := ApplyEnv(cmd); err != nil {
			t.Fatalf("ApplyEnv: %v", err)
		}
		if Global.Server != "http://10.1.1.1:3080" {
			t.Errorf("Global.Server = %q", Global.Server)
		}
		if Global.KeyFile != "/tmp/key" {
			t.Errorf("Global.KeyFile = %q", Global.KeyFile)
		}
		if Global.Selector != "fzf" {
			t.Errorf("Global.Selector = %q", Global.Selector)
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		resetGlobal()
		cmd := newFlagCommand()
		if err := cmd.ParseFlags([]string{"--server", "http://192.168.0.9:3080"}); err != nil {
			t.Fatalf("ParseFlags: %v", err)
		}

		t.Setenv("GNS3_SERVER", "http://10.1.1.1:3080")

		if err := ApplyEnv(cmd); err != nil {
			t.Fatalf("ApplyEnv: %v", err)
		}
		if Global.Server != "http://192.168.0.9:3080" {
			t.Errorf("Global.Server = %q, want flag value", Global.Server)
		}
	})
}

func TestResolveKeyFile(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	Global.KeyFile = "~/.gns3key"
	path, err := ResolveKeyFile()
	if err != nil {
		t.Fatalf("ResolveKeyFile: %v", err)
	}
	if want := filepath.Join(home, ".gns3key"); path != want {
		t.Errorf("ResolveKeyFile() = %q, want %q", path, want)
	}

	Global.KeyFile = "/etc/gns3/key"
	path, err = ResolveKeyFile()
	if err != nil {
		t.Fatalf("ResolveKeyFile: %v", err)
	}
	if path != "/etc/gns3/key" {
		t.Errorf("ResolveKeyFile() = %q, want absolute path unchanged", path)
	}
}
