package types

import "testing"

func TestWithAll(t *testing.T) {
	langs := []Language{
		{URLParam: "go", Name: "Go"},
		{URLParam: "rust", Name: "Rust"},
		{URLParam: "c++", Name: "C++"},
	}

	got := WithAll(langs)

	if len(got) != len(langs)+1 {
		t.Fatalf("Expected %d languages, got %d", len(langs)+1, len(got))
	}
	for i, l := range langs {
		if got[i] != l {
			t.Errorf("Entry %d: expected %+v, got %+v", i, l, got[i])
		}
	}
	last := got[len(got)-1]
	if last.Name != AllLanguages || last.URLParam != AllLanguages {
		t.Errorf("Expected synthetic All entry, got %+v", last)
	}

	count := 0
	for _, l := range got {
		if l.Name == AllLanguages {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one All entry, got %d", count)
	}

	// input must not be touched
	if len(langs) != 3 {
		t.Errorf("Input slice was modified: %+v", langs)
	}
}

func TestWithAll_Empty(t *testing.T) {
	got := WithAll(nil)
	if len(got) != 1 || got[0].Name != AllLanguages {
		t.Errorf("Expected only the All entry, got %+v", got)
	}
}

func TestDisplayNames(t *testing.T) {
	langs := WithAll([]Language{
		{URLParam: "go", Name: "Go"},
		{URLParam: "rust", Name: "Rust"},
	})

	got := DisplayNames(langs)
	want := []string{"All", "Go", "Rust"}

	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestDisplayNames_WithoutAll(t *testing.T) {
	got := DisplayNames([]Language{{URLParam: "go", Name: "Go"}})
	if len(got) != 1 || got[0] != "Go" {
		t.Errorf("Expected [Go], got %v", got)
	}
}

func TestLanguageIndex(t *testing.T) {
	idx := NewLanguageIndex(WithAll([]Language{
		{URLParam: "go", Name: "Go"},
		{URLParam: "c%23", Name: "C#"},
	}))

	tests := []struct {
		name      string
		lookup    string
		wantParam string
		wantOK    bool
	}{
		{"plain", "Go", "go", true},
		{"escaped param", "C#", "c%23", true},
		{"all sentinel", "All", "All", true},
		{"unknown", "Cobol", "", false},
		{"case sensitive", "go", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param, ok := idx.Resolve(tt.lookup)
			if ok != tt.wantOK || param != tt.wantParam {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.lookup, param, ok, tt.wantParam, tt.wantOK)
			}
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		input string
		want  TimeRange
		ok    bool
	}{
		{"daily", Daily, true},
		{"weekly", Weekly, true},
		{"monthly", Monthly, true},
		{"yearly", "", false},
		{"Daily", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseTimeRange(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseTimeRange(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTimeRangesOrder(t *testing.T) {
	want := []TimeRange{"daily", "weekly", "monthly"}
	if len(TimeRanges) != len(want) {
		t.Fatalf("Expected %d time ranges, got %d", len(want), len(TimeRanges))
	}
	for i := range want {
		if TimeRanges[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], TimeRanges[i])
		}
	}
}

func TestQueryFiltered(t *testing.T) {
	if (Query{Language: AllLanguages, Since: Daily}).Filtered() {
		t.Error("Expected All query to be unfiltered")
	}
	if !(Query{Language: "go", Since: Daily}).Filtered() {
		t.Error("Expected go query to be filtered")
	}
}

func TestProjectHasLanguageBadge(t *testing.T) {
	lang := "Go"
	color := "#00ADD8"

	if (&Project{}).HasLanguageBadge() {
		t.Error("Expected no badge without language")
	}
	if (&Project{Language: &lang}).HasLanguageBadge() {
		t.Error("Expected no badge without color")
	}
	if !(&Project{Language: &lang, LanguageColor: &color}).HasLanguageBadge() {
		t.Error("Expected badge with language and color")
	}
}

func TestLanguageValidate(t *testing.T) {
	tests := []struct {
		name    string
		lang    Language
		wantErr bool
	}{
		{"complete", Language{URLParam: "go", Name: "Go"}, false},
		{"empty", Language{}, true},
		{"missing param", Language{Name: "Go"}, true},
		{"missing name", Language{URLParam: "go"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lang.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
	}{
		{"complete", Project{Name: "foo", URL: "https://x/y", Author: "bar"}, false},
		{"empty", Project{}, true},
		{"missing url", Project{Name: "foo", Author: "bar"}, true},
		{"missing author", Project{Name: "foo", URL: "https://x/y"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
