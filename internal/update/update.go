// Package update checks GitHub for a newer release of rulekit. It
// only ever reports: installing a new version is left to the user.
// The check is best effort and must never get in the server's way,
// so every failure degrades to "no update available".
package update

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// githubRepo is the repository path for API calls.
	githubRepo = "rulekit/rulekit"

	// releaseURL is the GitHub API endpoint for the latest release.
	releaseURL = "https://api.github.com/repos/" + githubRepo + "/releases/latest"

	// checkTimeout is how long we wait for the GitHub API.
	checkTimeout = 10 * time.Second
)

// For testing: allow overriding the release URL and HTTP client.
var (
	releaseEndpoint = releaseURL
	httpClient      = &http.Client{Timeout: checkTimeout}
)

// release holds the fields we read from the GitHub release payload.
type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result describes the outcome of a version check.
type Result struct {
	// Current is the running version, leading v stripped.
	Current string
	// Latest is the newest released version, empty when the
	// check could not complete.
	Latest string
	// URL is the release page for Latest.
	URL string
	// Available is true when Latest is strictly newer than
	// Current.
	Available bool
}

// Check queries GitHub for the latest release and compares it
// against the running version. It never returns an error: network
// and decoding failures leave Latest empty and Available false.
func Check(current string) Result {
	result := Result{Current: strings.TrimPrefix(current, "v")}

	req, err := http.NewRequest(http.MethodGet, releaseEndpoint, nil)
	if err != nil {
		return result
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "rulekit/"+result.Current)

	resp, err := httpClient.Do(req)
	if err != nil {
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return result
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return result
	}

	result.Latest = strings.TrimPrefix(rel.TagName, "v")
	result.URL = rel.HTMLURL
	result.Available = newerThan(result.Latest, result.Current)

	return result
}

// newerThan reports whether version a is strictly newer than b by
// numeric semver comparison. Development builds never see updates.
func newerThan(a, b string) bool {
	if a == "" || b == "" || b == "dev" {
		return false
	}

	av, bv := versionParts(a), versionParts(b)
	for i := 0; i < 3; i++ {
		if av[i] != bv[i] {
			return av[i] > bv[i]
		}
	}
	return false
}

// versionParts decodes up to three dot-separated numeric fields.
// Missing fields read as zero, so "0.2" compares like "0.2.0".
func versionParts(v string) [3]int {
	var parts [3]int
	for i, field := range strings.SplitN(v, ".", 3) {
		parts[i] = numericPrefix(field)
	}
	return parts
}

// numericPrefix reads the leading digits of a version field, so
// "2-rc1" decodes as 2 while "beta" reads as zero.
func numericPrefix(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
