package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/studiowebux/trending/internal/apperr"
	"github.com/studiowebux/trending/internal/render"
	"github.com/studiowebux/trending/internal/types"
)

// Prompter asks the user for each choice of the pipeline
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
	SelectLanguage(ctx context.Context, names []string) (string, error)
	SelectTimeRange(ctx context.Context, options []types.TimeRange) (types.TimeRange, error)
	SelectProject(ctx context.Context, entries []string) (int, error)
}

// TerminalPrompter runs each prompt as a bubbletea program.
// Prompts are drawn on Output so that stdout only carries results.
type TerminalPrompter struct {
	Input  *os.File
	Output *os.File
}

// NewTerminalPrompter reads from stdin and draws on stderr
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{Input: os.Stdin, Output: os.Stderr}
}

// isInteractive checks if the input is a terminal (not piped)
func (p *TerminalPrompter) isInteractive() bool {
	fd := p.Input.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *TerminalPrompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	if !p.isInteractive() {
		return nil, apperr.Interaction("cannot prompt: stdin is not a terminal (use --language and --since)", nil)
	}

	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.Input),
		tea.WithOutput(p.Output),
	)
	final, err := prog.Run()
	if err != nil {
		return nil, apperr.Interaction("error running selector", err)
	}
	return final, nil
}

// Confirm asks a yes/no question. Enter answers no.
func (p *TerminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	final, err := p.run(ctx, confirmModel{question: question})
	if err != nil {
		return false, err
	}

	result := final.(confirmModel)
	if result.cancelled {
		return false, errCancelled
	}
	return result.answer, nil
}

// SelectLanguage shows the type-to-search language picker and returns the chosen name
func (p *TerminalPrompter) SelectLanguage(ctx context.Context, names []string) (string, error) {
	final, err := p.run(ctx, newFuzzyModel("Select a language", names))
	if err != nil {
		return "", err
	}

	result := final.(fuzzyModel)
	if result.cancelled || result.choice == "" {
		return "", errCancelled
	}
	return result.choice, nil
}

// SelectTimeRange offers the fixed time ranges, the first one preselected
func (p *TerminalPrompter) SelectTimeRange(ctx context.Context, options []types.TimeRange) (types.TimeRange, error) {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = string(o)
	}

	const listHeight = 9

	m := newSelectorModel("Select a time range", values, itemDelegate{height: 1}, listHeight)
	final, err := p.run(ctx, m)
	if err != nil {
		return "", err
	}

	result := final.(selectorModel)
	if result.cancelled || result.choice < 0 {
		return "", errCancelled
	}
	return options[result.choice], nil
}

// SelectProject pages through the formatted entries and returns the chosen index
func (p *TerminalPrompter) SelectProject(ctx context.Context, entries []string) (int, error) {
	// three entries per page plus title and paginator
	const listHeight = 3*(render.ProjectHeight+1) + 6

	m := newSelectorModel("Select a project", entries, itemDelegate{height: render.ProjectHeight, spacing: 1}, listHeight)
	final, err := p.run(ctx, m)
	if err != nil {
		return -1, err
	}

	result := final.(selectorModel)
	if result.cancelled || result.choice < 0 {
		return -1, errCancelled
	}
	return result.choice, nil
}

var errCancelled = apperr.Interaction("selection cancelled", nil)
