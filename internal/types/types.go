package types

import (
	"errors"
	"fmt"
)

// AllLanguages is the sentinel language meaning "no language filter".
// It is used both as the synthetic entry's name and as its URL parameter.
const AllLanguages = "All"

// TimeRange is the trending window accepted by the repositories endpoint
type TimeRange string

const (
	Daily   TimeRange = "daily"
	Weekly  TimeRange = "weekly"
	Monthly TimeRange = "monthly"
)

// TimeRanges lists the selectable windows in display order. The first one is the default.
var TimeRanges = []TimeRange{Daily, Weekly, Monthly}

// ParseTimeRange validates a user supplied time range
func ParseTimeRange(s string) (TimeRange, bool) {
	for _, tr := range TimeRanges {
		if string(tr) == s {
			return tr, true
		}
	}
	return "", false
}

// Language is a language entry returned by the languages endpoint
type Language struct {
	URLParam string `json:"urlParam" yaml:"urlParam"`
	Name     string `json:"name" yaml:"name"`
}

// Validate checks that both the display name and the URL parameter are set
func (l Language) Validate() error {
	if l.Name == "" || l.URLParam == "" {
		return fmt.Errorf("language entry %+v lacks name or urlParam", l)
	}
	return nil
}

// Project is a trending repository returned by the repositories endpoint
type Project struct {
	Author             string    `json:"author" yaml:"author"`
	Name               string    `json:"name" yaml:"name"`
	Avatar             string    `json:"avatar" yaml:"avatar"`
	URL                string    `json:"url" yaml:"url"`
	Description        string    `json:"description" yaml:"description"`
	Language           *string   `json:"language,omitempty" yaml:"language,omitempty"`           // absent when GitHub detected no primary language
	LanguageColor      *string   `json:"languageColor,omitempty" yaml:"languageColor,omitempty"` // "#rrggbb"
	Stars              int       `json:"stars" yaml:"stars"`
	Forks              int       `json:"forks" yaml:"forks"`
	CurrentPeriodStars int       `json:"currentPeriodStars" yaml:"currentPeriodStars"`
	BuiltBy            []BuiltBy `json:"builtBy" yaml:"builtBy"`
}

// Validate checks the fields every project record must carry
func (p *Project) Validate() error {
	switch {
	case p.Name == "":
		return errors.New("project without name")
	case p.URL == "":
		return fmt.Errorf("project %q without url", p.Name)
	case p.Author == "":
		return fmt.Errorf("project %q without author", p.Name)
	}
	return nil
}

// HasLanguageBadge reports whether both the language name and its color are known
func (p *Project) HasLanguageBadge() bool {
	return p.Language != nil && p.LanguageColor != nil
}

// BuiltBy is a contributor listed on a trending project. Never displayed.
type BuiltBy struct {
	Username string `json:"username" yaml:"username"`
	Avatar   string `json:"avatar" yaml:"avatar"`
	Href     string `json:"href" yaml:"href"`
}

// WithAll returns a copy of langs with the synthetic "All" entry appended.
// The original entries keep their order.
func WithAll(langs []Language) []Language {
	out := make([]Language, 0, len(langs)+1)
	out = append(out, langs...)
	return append(out, Language{URLParam: AllLanguages, Name: AllLanguages})
}

// DisplayNames returns the names shown by the language picker, with "All" moved to the front
func DisplayNames(langs []Language) []string {
	names := make([]string, 0, len(langs))
	hasAll := false
	for _, l := range langs {
		if l.Name == AllLanguages {
			hasAll = true
			continue
		}
		names = append(names, l.Name)
	}
	if hasAll {
		names = append([]string{AllLanguages}, names...)
	}
	return names
}

// LanguageIndex maps display names to URL parameters.
// Names are assumed unique, the upstream API guarantees it.
type LanguageIndex struct {
	params map[string]string
}

// NewLanguageIndex builds the name -> urlParam association once per run
func NewLanguageIndex(langs []Language) LanguageIndex {
	params := make(map[string]string, len(langs))
	for _, l := range langs {
		params[l.Name] = l.URLParam
	}
	return LanguageIndex{params: params}
}

// Resolve returns the URL parameter for a display name
func (idx LanguageIndex) Resolve(name string) (string, bool) {
	p, ok := idx.params[name]
	return p, ok
}

// Query is the resolved input of a repositories request
type Query struct {
	Language string    // urlParam, or AllLanguages for no filter
	Since    TimeRange
}

// Filtered reports whether the query carries a language constraint
func (q Query) Filtered() bool {
	return q.Language != AllLanguages
}
