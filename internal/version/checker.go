package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	githubAPIURL = "https://api.github.com/repos/studiowebux/trending/releases/latest"
	checkTimeout = 5 * time.Second
)

type GitHubRelease struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Update describes the latest published release
type Update struct {
	Available bool
	Latest    string
	URL       string
}

// CheckForUpdate checks if a newer version is available
func CheckForUpdate(ctx context.Context, currentVersion string) (*Update, error) {
	return checkForUpdate(ctx, githubAPIURL, currentVersion)
}

func checkForUpdate(ctx context.Context, releaseURL, currentVersion string) (*Update, error) {
	client := &http.Client{
		Timeout: checkTimeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "trending/"+currentVersion)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	update := &Update{
		Latest: strings.TrimPrefix(release.TagName, "v"),
		URL:    release.HTMLURL,
	}
	currentVersion = strings.TrimPrefix(currentVersion, "v")
	update.Available = update.Latest != "" && isNewerVersion(update.Latest, currentVersion)

	return update, nil
}

// isNewerVersion reports whether latest is ahead of current.
// Pre-release and build suffixes are ignored, missing components count as 0.
func isNewerVersion(latest, current string) bool {
	a, b := parseVersion(latest), parseVersion(current)
	for i := 0; i < len(a) || i < len(b); i++ {
		x, y := component(a, i), component(b, i)
		if x != y {
			return x > y
		}
	}
	return false
}

func component(parts []int, i int) int {
	if i < len(parts) {
		return parts[i]
	}
	return 0
}

// parseVersion splits "1.2.3-rc1" into [1 2 3]. Non-numeric components are dropped.
func parseVersion(v string) []int {
	if cut := strings.IndexAny(v, "-+"); cut >= 0 {
		v = v[:cut]
	}

	var parts []int
	for _, field := range strings.Split(v, ".") {
		if n, err := strconv.Atoi(field); err == nil {
			parts = append(parts, n)
		}
	}
	return parts
}
