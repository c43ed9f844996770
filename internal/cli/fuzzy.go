package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

const fuzzyPageSize = 10

// fuzzyModel is a type-to-filter single-select list
type fuzzyModel struct {
	title    string
	input    textinput.Model
	all      []string
	filtered []int // indexes into all, best match first
	cursor   int
	offset   int

	choice    string
	cancelled bool
	quitting  bool
}

func newFuzzyModel(title string, values []string) fuzzyModel {
	ti := textinput.New()
	ti.Placeholder = "type to search"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	m := fuzzyModel{
		title: title,
		input: ti,
		all:   values,
	}
	m.refilter()
	return m
}

// refilter ranks values against the current query. An empty query keeps the original order.
func (m *fuzzyModel) refilter() {
	query := strings.TrimSpace(m.input.Value())

	filtered := make([]int, 0, len(m.all))
	if query == "" {
		for i := range m.all {
			filtered = append(filtered, i)
		}
	} else {
		for _, match := range fuzzy.Find(query, m.all) {
			filtered = append(filtered, match.Index)
		}
	}
	m.filtered = filtered

	m.cursor = 0
	m.offset = 0
}

func (m *fuzzyModel) move(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+fuzzyPageSize {
		m.offset = m.cursor - fuzzyPageSize + 1
	}
}

// selected returns the highlighted value
func (m fuzzyModel) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return "", false
	}
	return m.all[m.filtered[m.cursor]], true
}

func (m fuzzyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m fuzzyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit

		case "enter":
			value, ok := m.selected()
			if !ok {
				// nothing matches, keep editing
				return m, nil
			}
			m.choice = value
			m.quitting = true
			return m, tea.Quit

		case "up", "ctrl+p":
			m.move(-1)
			return m, nil

		case "down", "ctrl+n":
			m.move(1)
			return m, nil

		case "pgup":
			m.move(-fuzzyPageSize)
			return m, nil

		case "pgdown":
			m.move(fuzzyPageSize)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m fuzzyModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n  ")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	end := m.offset + fuzzyPageSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := m.offset; i < end; i++ {
		value := m.all[m.filtered[i]]
		if i == m.cursor {
			sb.WriteString(selectedItemStyle.Render("> " + value))
		} else {
			sb.WriteString(itemStyle.Render(value))
		}
		sb.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		sb.WriteString(itemStyle.Render("no match"))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d • ↑/↓: navigate • enter: select • esc: cancel", len(m.filtered), len(m.all))))
	return sb.String()
}
