package selector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Exit codes fzf uses for "no match" and "interrupted"
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

// Exec selects through an external line selector such as fzf. Candidates are
// written to its stdin, one per line, and every line it prints is a selection.
type Exec struct {
	Binary string    // Executable name or path
	Args   []string  // Extra arguments, e.g. --multi
	Stderr io.Writer // Where the selector's own diagnostics go; os.Stderr if nil
}

// Select runs the external selector. A no-match or interrupted exit is an
// empty selection; any other failure is an error.
func (e Exec) Select(candidates []string) ([]string, error) {
	path, err := exec.LookPath(e.Binary)
	if err != nil {
		return nil, fmt.Errorf("selector %s not found in PATH: %w", e.Binary, err)
	}

	stderr := e.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdout bytes.Buffer
	cmd := exec.Command(path, e.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(candidates, "\n") + "\n")
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitNoMatch, exitInterrupted:
				return nil, nil
			}
		}
		return nil, fmt.Errorf("selector %s failed: %w", e.Binary, err)
	}

	var selected []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			selected = append(selected, line)
		}
	}
	return selected, nil
}
