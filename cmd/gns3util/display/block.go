package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const blockSeparator = "---"

// Field is one key/value line of a block.
type Field struct {
	Key   string
	Value string
}

// BlockPrinter prints items as bracketed blocks:
//
//	---
//	key: value
//	---
//
// The separators are grey and the keys cyan when the writer supports colour.
type BlockPrinter struct {
	w         io.Writer
	separator lipgloss.Style
	key       lipgloss.Style
}

// NewBlockPrinter creates a block printer writing to w.
func NewBlockPrinter(w io.Writer) *BlockPrinter {
	renderer := lipgloss.NewRenderer(w)
	if !ColorEnabled(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &BlockPrinter{
		w:         w,
		separator: renderer.NewStyle().Foreground(lipgloss.Color("8")),
		key:       renderer.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Print writes one block. Values are written verbatim.
func (p *BlockPrinter) Print(fields []Field) error {
	if _, err := fmt.Fprintln(p.w, p.separator.Render(blockSeparator)); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(p.w, "%s: %s\n", p.key.Render(f.Key), f.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, p.separator.Render(blockSeparator))
	return err
}
