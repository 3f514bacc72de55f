// Package selector provides the fuzzy line selectors used by the gns3util
// drill-down commands.
//
// A Selector receives the candidate strings (usernames or group names) and
// returns the subset the user picked. An empty result is a normal outcome
// meaning nothing was chosen; errors are reserved for selectors that could
// not run at all.
//
// Two back ends exist: the builtin picker, an in-process terminal UI ranking
// candidates with the fzf matching algorithm, and Exec, which pipes the
// candidates through an external `fzf --multi` process.
package selector

import (
	"fmt"
	"os"

	"github.com/concave-dev/gns3util/cmd/gns3util/config"
)

// Selector narrows a candidate list down to the user's selection.
type Selector interface {
	Select(candidates []string) ([]string, error)
}

// New returns the selector registered under name.
func New(name string) (Selector, error) {
	switch name {
	case config.SelectorBuiltin, "":
		return NewPicker(os.Stderr), nil
	case config.SelectorFzf:
		return Exec{Binary: "fzf", Args: []string{"--multi"}}, nil
	default:
		return nil, fmt.Errorf("unknown selector %q", name)
	}
}
