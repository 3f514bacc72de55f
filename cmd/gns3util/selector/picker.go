package selector

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// Rows kept free for the prompt and the counter line
const pickerChrome = 2

const defaultPickerHeight = 12

// pickerKeys holds the key bindings of the builtin picker.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Accept key.Binding
	Abort  key.Binding
}

var defaultPickerKeys = pickerKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p", "ctrl+k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n", "ctrl+j"),
		key.WithHelp("↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept"),
	),
	Abort: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "abort"),
	),
}

type pickerStyles struct {
	prompt   lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	counter  lipgloss.Style
}

// pickerModel is the bubbletea model of the builtin picker. The query is
// re-ranked on every edit; selections are candidate indices so duplicate
// names stay distinct.
type pickerModel struct {
	candidates []string
	query      []rune
	matches    []int
	cursor     int
	selected   mapset.Set[int]
	height     int
	aborted    bool

	keys   pickerKeys
	styles pickerStyles
}

func newPickerModel(candidates []string, renderer *lipgloss.Renderer) pickerModel {
	return pickerModel{
		candidates: candidates,
		matches:    Rank("", candidates),
		selected:   mapset.NewThreadUnsafeSet[int](),
		height:     defaultPickerHeight,
		keys:       defaultPickerKeys,
		styles: pickerStyles{
			prompt:   renderer.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
			cursor:   renderer.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
			selected: renderer.NewStyle().Foreground(lipgloss.Color("2")),
			counter:  renderer.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height, pickerChrome+1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Accept):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if len(m.matches) > 0 {
				index := m.matches[m.cursor]
				if m.selected.Contains(index) {
					m.selected.Remove(index)
				} else {
					m.selected.Add(index)
				}
				m.cursor = min(m.cursor+1, len(m.matches)-1)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil

		case msg.Type == tea.KeyBackspace:
			if len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
				m.refilter()
			}
			return m, nil

		case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
			if msg.Type == tea.KeySpace {
				m.query = append(m.query, ' ')
			} else {
				m.query = append(m.query, msg.Runes...)
			}
			m.refilter()
			return m, nil
		}
	}

	return m, nil
}

func (m *pickerModel) refilter() {
	m.matches = Rank(string(m.query), m.candidates)
	m.cursor = 0
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.prompt.Render(">") + " " + string(m.query) + "\n")

	rows := m.height - pickerChrome
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(m.matches))

	for i := start; i < end; i++ {
		index := m.matches[i]

		pointer := " "
		if i == m.cursor {
			pointer = m.styles.cursor.Render(">")
		}
		mark := " "
		if m.selected.Contains(index) {
			mark = m.styles.selected.Render("*")
		}
		b.WriteString(pointer + mark + " " + m.candidates[index] + "\n")
	}

	counter := fmt.Sprintf("  %d/%d", len(m.matches), len(m.candidates))
	if n := m.selected.Cardinality(); n > 0 {
		counter += fmt.Sprintf(" (%d selected)", n)
	}
	b.WriteString(m.styles.counter.Render(counter))

	return b.String()
}

// result returns the picked candidates in candidate order. Toggled entries
// win; with none toggled, Enter picks the entry under the cursor. An aborted
// picker selects nothing.
func (m pickerModel) result() []string {
	if m.aborted {
		return nil
	}
	if m.selected.Cardinality() > 0 {
		return lo.Filter(m.candidates, func(_ string, i int) bool {
			return m.selected.Contains(i)
		})
	}
	if len(m.matches) == 0 {
		return nil
	}
	return []string{m.candidates[m.matches[m.cursor]]}
}

// Picker is the builtin interactive selector. It draws on out and reads keys
// from the controlling terminal, so standard input and output stay free.
type Picker struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewPicker creates a builtin picker drawing on out, normally stderr.
func NewPicker(out io.Writer) *Picker {
	return &Picker{out: out, renderer: lipgloss.NewRenderer(out)}
}

// Select runs the picker until the user accepts or aborts.
func (p *Picker) Select(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	program := tea.NewProgram(newPickerModel(candidates, p.renderer),
		tea.WithOutput(p.out), tea.WithInputTTY())

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("fuzzy picker failed: %w", err)
	}

	model, ok := final.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("fuzzy picker returned unexpected model %T", final)
	}
	return model.result(), nil
}
