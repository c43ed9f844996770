package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/studiowebux/trending/internal/api"
	"github.com/studiowebux/trending/internal/apperr"
	"github.com/studiowebux/trending/internal/filter"
	"github.com/studiowebux/trending/internal/render"
	"github.com/studiowebux/trending/internal/types"
	"go.uber.org/zap"
)

// State is a step of the pipeline
type State int

const (
	StateLoadingLanguages State = iota
	StatePickingLanguage
	StatePickingTimeRange
	StateLoadingTrends
	StatePickingProject
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoadingLanguages:
		return "LoadingLanguages"
	case StatePickingLanguage:
		return "PickingLanguage"
	case StatePickingTimeRange:
		return "PickingTimeRange"
	case StateLoadingTrends:
		return "LoadingTrends"
	case StatePickingProject:
		return "PickingProject"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RunOptions contains the choices made ahead of time on the command line
type RunOptions struct {
	Language string // display name or fuzzy query, empty to prompt
	Since    string // daily, weekly or monthly, empty to prompt
	Confirm  bool   // ask "filter by language?" before the language picker
	Output   string // text, json, yaml
	Filter   string // JMESPath expression over the repositories payload
	Copy     bool   // copy the selected URL to the clipboard
}

// Runner wires the pipeline to its collaborators
type Runner struct {
	Client    *api.Client
	Prompter  Prompter
	Formatter *render.Formatter
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *zap.Logger
	Clipboard func(text string) error

	state State
}

// State returns the step the last run reached
func (r *Runner) State() State {
	return r.state
}

func (r *Runner) enter(s State) {
	r.Logger.Debug("state", zap.Stringer("from", r.state), zap.Stringer("to", s))
	r.state = s
}

// Run walks LoadingLanguages -> PickingLanguage -> PickingTimeRange -> LoadingTrends ->
// PickingProject -> Done. The first error moves to Failed and is returned as is.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*types.Project, error) {
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	r.state = StateLoadingLanguages

	project, err := r.run(ctx, opts)
	if err != nil {
		r.enter(StateFailed)
		return nil, err
	}
	r.enter(StateDone)
	return project, nil
}

func (r *Runner) run(ctx context.Context, opts RunOptions) (*types.Project, error) {
	// Flag problems are reported before any request is made
	var since types.TimeRange
	if opts.Since != "" {
		tr, ok := types.ParseTimeRange(opts.Since)
		if !ok {
			return nil, apperr.Usage(fmt.Sprintf("invalid time range %q (expected daily, weekly or monthly)", opts.Since))
		}
		since = tr
	}

	var filters []api.BodyFilter
	if opts.Filter != "" {
		f, err := filter.Compile(opts.Filter)
		if err != nil {
			return nil, apperr.New(apperr.KindUsage, "invalid filter", err)
		}
		r.Logger.Debug("filter compiled", zap.String("expression", f.Expression()))
		filters = append(filters, f.Apply)
	}

	if _, err := formatProject(&types.Project{}, opts.Output); err != nil {
		return nil, apperr.New(apperr.KindUsage, "invalid output", err)
	}

	langs, err := r.Client.FetchLanguages(ctx)
	if err != nil {
		return nil, err
	}

	r.enter(StatePickingLanguage)
	name, err := r.pickLanguage(ctx, langs, opts)
	if err != nil {
		return nil, err
	}

	index := types.NewLanguageIndex(langs)
	param, ok := index.Resolve(name)
	if !ok {
		return nil, apperr.Internal(fmt.Sprintf("language %q is not in the fetched list", name), nil)
	}
	r.Logger.Debug("language resolved", zap.String("name", name), zap.String("param", param))

	r.enter(StatePickingTimeRange)
	if since == "" {
		since, err = r.Prompter.SelectTimeRange(ctx, types.TimeRanges)
		if err != nil {
			return nil, err
		}
	}

	r.enter(StateLoadingTrends)
	url := r.Client.RepositoriesURL(types.Query{Language: param, Since: since})
	fmt.Fprintf(r.Stdout, "url: %s\n", url)

	projects, err := r.Client.FetchRepositories(ctx, url, filters...)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, apperr.NoResults(fmt.Sprintf("no trending repositories for %s (%s)", name, since))
	}

	r.enter(StatePickingProject)
	choice, err := r.Prompter.SelectProject(ctx, r.Formatter.Projects(projects))
	if err != nil {
		return nil, err
	}
	if choice < 0 || choice >= len(projects) {
		return nil, apperr.Internal(fmt.Sprintf("project index %d out of range", choice), nil)
	}
	project := projects[choice]

	out, err := formatProject(&project, opts.Output)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(r.Stdout, out)

	if opts.Copy && r.Clipboard != nil {
		if err := r.Clipboard(project.URL); err != nil {
			fmt.Fprintf(r.Stderr, "Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	return &project, nil
}

// pickLanguage returns the chosen display name. Declining the confirmation
// and picking "All" both yield types.AllLanguages.
func (r *Runner) pickLanguage(ctx context.Context, langs []types.Language, opts RunOptions) (string, error) {
	names := types.DisplayNames(langs)

	if opts.Language != "" {
		name, exact, err := ResolveLanguageName(names, opts.Language)
		if err != nil {
			return "", err
		}
		if !exact {
			fmt.Fprintf(r.Stderr, "Warning: no language named %q, using %q\n", strings.TrimSpace(opts.Language), name)
		}
		return name, nil
	}

	if opts.Confirm {
		wanted, err := r.Prompter.Confirm(ctx, "Filter by language?")
		if err != nil {
			return "", err
		}
		if !wanted {
			return types.AllLanguages, nil
		}
	}

	return r.Prompter.SelectLanguage(ctx, names)
}

// Languages prints the languages offered by the API, without the synthetic "All" entry
func (r *Runner) Languages(ctx context.Context, format string) error {
	langs, err := r.Client.FetchLanguages(ctx)
	if err != nil {
		return err
	}

	fetched := make([]types.Language, 0, len(langs))
	for _, l := range langs {
		if l.Name == types.AllLanguages && l.URLParam == types.AllLanguages {
			continue
		}
		fetched = append(fetched, l)
	}

	out, err := formatLanguages(fetched, strings.ToLower(format))
	if err != nil {
		return apperr.New(apperr.KindUsage, "invalid output", err)
	}
	fmt.Fprint(r.Stdout, out)
	return nil
}
