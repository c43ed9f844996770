package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1).MarginLeft(2)
	promptStyle       = lipgloss.NewStyle().MarginLeft(2).Foreground(lipgloss.Color("170"))
)

type item struct {
	value string
	index int
}

func (i item) FilterValue() string { return i.value }

// selectorModel is a single-select list without filtering
type selectorModel struct {
	list      list.Model
	choice    int
	cancelled bool
	quitting  bool
}

func newSelectorModel(title string, values []string, delegate list.ItemDelegate, height int) selectorModel {
	items := make([]list.Item, 0, len(values))
	for i, v := range values {
		items = append(items, item{value: v, index: i})
	}

	const defaultWidth = 80

	l := list.New(items, delegate, defaultWidth, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle

	return selectorModel{list: l, choice: -1}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = i.index
			} else {
				m.cancelled = true
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectorModel) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("↑/↓: navigate • ←/→: page • enter: select • q/esc: cancel")
	return fmt.Sprintf("%s\n\n%s", m.list.View(), help)
}

// itemDelegate renders entries of a fixed number of lines
type itemDelegate struct {
	height  int
	spacing int
}

func (d itemDelegate) Height() int                             { return d.height }
func (d itemDelegate) Spacing() int                            { return d.spacing }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	lines := strings.Split(i.value, "\n")
	if len(lines) > d.height {
		lines = lines[:d.height]
	}

	selected := index == m.Index()
	for n, line := range lines {
		if n > 0 {
			fmt.Fprint(w, "\n")
		}
		switch {
		case selected && n == 0:
			fmt.Fprint(w, selectedItemStyle.Render("> "+line))
		case selected:
			fmt.Fprint(w, selectedItemStyle.Render("  "+line))
		default:
			fmt.Fprint(w, itemStyle.Render(line))
		}
	}
}

// confirmModel asks a yes/no question, defaulting to no
type confirmModel struct {
	question  string
	answer    bool
	cancelled bool
	quitting  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch strings.ToLower(key.String()) {
	case "y":
		m.answer = true
	case "n", "enter":
		m.answer = false
	case "ctrl+c", "esc":
		m.cancelled = true
	default:
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.quitting {
		return ""
	}
	return promptStyle.Render(m.question+" [y/N] ") + "\n"
}
