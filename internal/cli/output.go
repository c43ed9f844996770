package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studiowebux/trending/internal/types"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// formatProject formats the selected project. text is "<name> <url>".
func formatProject(p *types.Project, format string) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(p)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case FormatText, "":
		return fmt.Sprintf("%s %s\n", p.Name, p.URL), nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// formatLanguages formats the language list. text is one "<urlParam>\t<name>" per line.
func formatLanguages(langs []types.Language, format string) (string, error) {
	if langs == nil {
		langs = []types.Language{}
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(langs, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil

	case FormatYAML:
		data, err := yaml.Marshal(langs)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case FormatText, "":
		var sb strings.Builder
		for _, l := range langs {
			sb.WriteString(fmt.Sprintf("%s\t%s\n", l.URLParam, l.Name))
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
