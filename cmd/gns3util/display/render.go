// Package display provides output formatting for gns3util.
//
// This package handles all user-facing output of command results: indented
// JSON for the generic get commands, optionally syntax highlighted when
// standard output is a terminal, and the bracketed key/value blocks printed by
// the fuzzy drill-down workflows.
//
// Everything here writes to an explicit io.Writer so that commands can be
// rendered into buffers by tests. Colour decisions are made per writer: a
// non-terminal writer, --no-color or a NO_COLOR environment variable always
// produce plain text.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/concave-dev/gns3util/cmd/gns3util/client"
	"github.com/concave-dev/gns3util/cmd/gns3util/config"
	"golang.org/x/term"
)

const (
	jsonIndent     = "  "
	highlightStyle = "monokai"
)

// RenderResult writes the payload of a successful result as indented JSON.
// A failed result renders nothing; the client has already logged it.
func RenderResult(w io.Writer, result client.Result) error {
	if !result.OK {
		return nil
	}
	return RenderJSON(w, result.Data)
}

// RenderJSON writes v as 2-space indented JSON followed by a newline.
// json.RawMessage values are re-indented as they are, keeping the server's
// field order.
func RenderJSON(w io.Writer, v any) error {
	formatted, err := indentJSON(v)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}

	if ColorEnabled(w) {
		if err := quick.Highlight(w, formatted+"\n", "json", "terminal256", highlightStyle); err == nil {
			return nil
		}
		// Fall through to plain output if the highlighter fails
	}

	_, err = io.WriteString(w, formatted+"\n")
	return err
}

func indentJSON(v any) (string, error) {
	var raw []byte
	switch data := v.(type) {
	case json.RawMessage:
		raw = data
	case []byte:
		raw = data
	default:
		out, err := json.MarshalIndent(v, "", jsonIndent)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", jsonIndent); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ColorEnabled reports whether output to w should carry ANSI colour.
func ColorEnabled(w io.Writer) bool {
	if config.Global.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
