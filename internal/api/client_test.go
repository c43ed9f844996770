package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/studiowebux/trending/internal/apperr"
	"github.com/studiowebux/trending/internal/types"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestRepositoriesURL(t *testing.T) {
	base := "https://github-trending-api.now.sh"

	tests := []struct {
		name  string
		base  string
		query types.Query
		want  string
	}{
		{
			name:  "all languages",
			base:  base,
			query: types.Query{Language: types.AllLanguages, Since: types.Daily},
			want:  base + "/repositories?since=daily",
		},
		{
			name:  "language filter",
			base:  base,
			query: types.Query{Language: "go", Since: types.Weekly},
			want:  base + "/repositories?language=go&since=weekly",
		},
		{
			name:  "param kept verbatim",
			base:  base,
			query: types.Query{Language: "c%23", Since: types.Monthly},
			want:  base + "/repositories?language=c%23&since=monthly",
		},
		{
			name:  "trailing slash on base",
			base:  base + "/",
			query: types.Query{Language: types.AllLanguages, Since: types.Weekly},
			want:  base + "/repositories?since=weekly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepositoriesURL(tt.base, tt.query)
			if got != tt.want {
				t.Errorf("RepositoriesURL() = %q, want %q", got, tt.want)
			}
			if again := RepositoriesURL(tt.base, tt.query); again != got {
				t.Errorf("Expected identical URL on second build, got %q and %q", got, again)
			}
			if !tt.query.Filtered() && strings.Contains(got, "language=") {
				t.Errorf("Unfiltered query must not carry a language parameter: %q", got)
			}
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	if c.baseURL != DefaultBaseURL {
		t.Errorf("Expected default base URL, got %q", c.baseURL)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, c.httpClient.Timeout)
	}
	if c.LanguagesURL() != DefaultBaseURL+"/languages" {
		t.Errorf("Unexpected languages URL %q", c.LanguagesURL())
	}
}

func TestFetchLanguages(t *testing.T) {
	var gotPath, gotAgent string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"urlParam":"go","name":"Go"},{"urlParam":"rust","name":"Rust"}]`))
	})

	langs, err := c.FetchLanguages(context.Background())
	if err != nil {
		t.Fatalf("FetchLanguages failed: %v", err)
	}

	if gotPath != "/languages" {
		t.Errorf("Expected /languages, got %s", gotPath)
	}
	if gotAgent != "trending" {
		t.Errorf("Expected default user agent, got %q", gotAgent)
	}

	want := []types.Language{
		{URLParam: "go", Name: "Go"},
		{URLParam: "rust", Name: "Rust"},
		{URLParam: "All", Name: "All"},
	}
	if len(langs) != len(want) {
		t.Fatalf("Expected %d languages, got %d: %+v", len(want), len(langs), langs)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], langs[i])
		}
	}
}

func TestFetchLanguages_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		isDecode bool
	}{
		{"object instead of array", http.StatusOK, `{"urlParam":"go"}`, true},
		{"wrong field type", http.StatusOK, `[{"urlParam":1,"name":"Go"}]`, true},
		{"not json", http.StatusOK, `<html>`, true},
		{"empty body", http.StatusOK, ``, true},
		{"null body", http.StatusOK, `null`, true},
		{"empty record", http.StatusOK, `[{}]`, true},
		{"unknown fields only", http.StatusOK, `[{"foo":1}]`, true},
		{"missing urlParam", http.StatusOK, `[{"name":"Go"}]`, true},
		{"server error", http.StatusInternalServerError, `oops`, false},
		{"not found", http.StatusNotFound, `[]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.FetchLanguages(context.Background())
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.isDecode && !apperr.IsDecode(err) {
				t.Errorf("Expected decode error, got %v", err)
			}
			if !tt.isDecode && !apperr.IsNetwork(err) {
				t.Errorf("Expected network error, got %v", err)
			}
		})
	}
}

func TestFetchLanguages_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(url, time.Second)
	_, err := c.FetchLanguages(context.Background())
	if !apperr.IsNetwork(err) {
		t.Errorf("Expected network error, got %v", err)
	}
}

func TestFetchLanguages_Cancelled(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchLanguages(ctx)
	if !apperr.IsNetwork(err) {
		t.Errorf("Expected network error for cancelled context, got %v", err)
	}
}

const trendsFixture = `[
  {"author":"bar","name":"foo","avatar":"https://x/a.png","url":"https://x/y","description":"d",
   "language":"Go","languageColor":"#00ADD8","stars":1,"forks":0,"currentPeriodStars":1,
   "builtBy":[{"username":"bar","href":"https://x/bar","avatar":"https://x/b.png"}]},
  {"author":"baz","name":"plain","url":"https://x/z","description":"no language",
   "stars":42,"forks":7,"currentPeriodStars":3,"builtBy":[]}
]`

func TestFetchRepositories(t *testing.T) {
	var gotQuery string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(trendsFixture))
	})

	url := c.RepositoriesURL(types.Query{Language: "go", Since: types.Weekly})
	projects, err := c.FetchRepositories(context.Background(), url)
	if err != nil {
		t.Fatalf("FetchRepositories failed: %v", err)
	}

	if gotQuery != "language=go&since=weekly" {
		t.Errorf("Unexpected query %q", gotQuery)
	}
	if len(projects) != 2 {
		t.Fatalf("Expected 2 projects, got %d", len(projects))
	}

	foo := projects[0]
	if foo.Name != "foo" || foo.Author != "bar" || foo.URL != "https://x/y" {
		t.Errorf("Unexpected first project %+v", foo)
	}
	if foo.Language == nil || *foo.Language != "Go" {
		t.Errorf("Expected language Go, got %v", foo.Language)
	}
	if foo.LanguageColor == nil || *foo.LanguageColor != "#00ADD8" {
		t.Errorf("Expected color #00ADD8, got %v", foo.LanguageColor)
	}
	if len(foo.BuiltBy) != 1 || foo.BuiltBy[0].Username != "bar" {
		t.Errorf("Unexpected builtBy %+v", foo.BuiltBy)
	}

	plain := projects[1]
	if plain.Language != nil || plain.LanguageColor != nil {
		t.Errorf("Expected absent language fields, got %v / %v", plain.Language, plain.LanguageColor)
	}
	if plain.Stars != 42 || plain.Forks != 7 || plain.CurrentPeriodStars != 3 {
		t.Errorf("Unexpected counters %+v", plain)
	}
}

func TestFetchRepositories_Filters(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(trendsFixture))
	})

	var calls []string
	first := func(body []byte) ([]byte, error) {
		calls = append(calls, "first")
		return body, nil
	}
	second := func(body []byte) ([]byte, error) {
		calls = append(calls, "second")
		return []byte(`[]`), nil
	}

	projects, err := c.FetchRepositories(context.Background(), c.RepositoriesURL(types.Query{Language: types.AllLanguages, Since: types.Daily}), first, second)
	if err != nil {
		t.Fatalf("FetchRepositories failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected filtered result to be empty, got %d", len(projects))
	}
	if strings.Join(calls, ",") != "first,second" {
		t.Errorf("Expected filters in order, got %v", calls)
	}
}

func TestFetchRepositories_FilterError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(trendsFixture))
	})

	failing := func(body []byte) ([]byte, error) {
		return nil, bytes.ErrTooLarge
	}

	_, err := c.FetchRepositories(context.Background(), c.RepositoriesURL(types.Query{Language: types.AllLanguages, Since: types.Daily}), failing)
	if !apperr.IsDecode(err) {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestDecodeProjects_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object instead of array", `{"name":"foo"}`},
		{"wrong field type", `[{"stars":"many"}]`},
		{"null body", `null`},
		{"empty body", ``},
		{"empty record", `[{}]`},
		{"unknown fields only", `[{"foo":1}]`},
		{"missing url", `[{"author":"bar","name":"foo"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProjects([]byte(tt.body))
			if !apperr.IsDecode(err) {
				t.Errorf("Expected decode error, got %v", err)
			}
		})
	}
}

func TestDecodeProjects_EmptyArray(t *testing.T) {
	projects, err := DecodeProjects([]byte("  []\n"))
	if err != nil {
		t.Fatalf("DecodeProjects failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected no projects, got %d", len(projects))
	}
}

func TestFetchRepositories_NullBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	_, err := c.FetchRepositories(context.Background(), c.RepositoriesURL(types.Query{Language: types.AllLanguages, Since: types.Daily}))
	if !apperr.IsDecode(err) {
		t.Errorf("Expected decode error, got %v", err)
	}
}
