package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/trending/internal/types"
)

const (
	starGlyph     = "⭐ "
	forkGlyph     = "🍴 "
	starFallback  = "s: "
	forkFallback  = "f: "
	ProjectHeight = 4 // lines produced by Formatter.Project
)

// Formatter renders projects as multi-line entries
type Formatter struct {
	emoji bool

	nameStyle   lipgloss.Style
	authorStyle lipgloss.Style
	badgeStyle  lipgloss.Style
}

// NewFormatter creates a Formatter drawing with r. Use lipgloss.DefaultRenderer()
// for the terminal, or a renderer with a fixed color profile in tests.
func NewFormatter(r *lipgloss.Renderer, emoji bool) *Formatter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Formatter{
		emoji:       emoji,
		nameStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		authorStyle: r.NewStyle().Foreground(lipgloss.Color("241")),
		badgeStyle:  r.NewStyle(),
	}
}

// Project renders the four display lines of a project: title, author, counters, description
func (f *Formatter) Project(p types.Project) string {
	lines := []string{
		f.Title(p),
		f.authorStyle.Render(p.Author),
		f.Counters(p),
		p.Description,
	}
	return strings.Join(lines, "\n")
}

// Title renders the project name followed by its language badge when both
// language and color are known. An unparsable color still shows the language, uncolored.
func (f *Formatter) Title(p types.Project) string {
	title := f.nameStyle.Render(p.Name)
	if !p.HasLanguageBadge() {
		return title
	}
	return title + " " + f.Badge(*p.Language, *p.LanguageColor)
}

// Badge renders text on the given "#rrggbb" background
func (f *Formatter) Badge(text, hex string) string {
	c, err := ParseHexColor(hex)
	if err != nil {
		return text
	}

	fg := lipgloss.Color("#ffffff")
	if c.Light() {
		fg = lipgloss.Color("#000000")
	}
	return f.badgeStyle.
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg).
		Render(text)
}

// Counters renders the star and fork counts
func (f *Formatter) Counters(p types.Project) string {
	star, fork := starFallback, forkFallback
	if f.emoji {
		star, fork = starGlyph, forkGlyph
	}
	return fmt.Sprintf("%s%d %s%d", star, p.Stars, fork, p.Forks)
}

// Projects renders every project, keeping the API order
func (f *Formatter) Projects(projects []types.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = f.Project(p)
	}
	return out
}
