package cli

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/trending/internal/apperr"
)

// ResolveLanguageName maps a --language value to a display name.
// Exact matches (ignoring case) win, otherwise the best fuzzy match is used
// and exact is false.
func ResolveLanguageName(names []string, query string) (name string, exact bool, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false, apperr.Usage("language must not be empty")
	}

	for _, n := range names {
		if strings.EqualFold(n, query) {
			return n, true, nil
		}
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return "", false, apperr.Usage(fmt.Sprintf("unknown language %q", query))
	}
	return matches[0].Str, false, nil
}
