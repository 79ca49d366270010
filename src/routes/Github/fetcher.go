package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"portfolio-backend/utils"
)

const (
	// The listing call asks for up to 20 repositories sorted by recency;
	// at most the 6 most recent become projects.
	listPageSize = 20
	maxProjects  = 6

	// Readme excerpts are cut at 500 characters plus the marker.
	readmeCutoff    = 500
	truncationMark  = "..."
	readmeFallback  = "README not available"
	fallbackMessage = "Using fallback project data"
)

// Fetcher retrieves a bounded, recency-ranked subset of a user's public
// repositories. It never returns an error: every failure degrades to the
// fallback dataset or to skipping a single repository, so the portfolio
// page always has something to render.
type Fetcher struct {
	baseURL  string
	username string
	token    string
	client   *http.Client
}

func NewFetcher(baseURL, username, token string, client *http.Client) *Fetcher {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &Fetcher{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		username: username,
		token:    token,
		client:   client,
	}
}

func (f *Fetcher) Username() string {
	return f.username
}

// candidateResult is the outcome for one listed repository: either a
// normalized project or a skip with its reason. The aggregation in
// FetchTopProjects drops skipped entries without failing the batch.
type candidateResult struct {
	project Project
	skipped bool
	reason  error
}

// FetchTopProjects returns the newest repositories, each with a readme
// excerpt. Readme calls run in parallel, bounded by the candidate count;
// the result keeps the upstream recency order.
func (f *Fetcher) FetchTopProjects(ctx context.Context) ProjectFetchResult {
	repos, err := f.listRepositories(ctx)
	if err != nil {
		logrus.Errorf("[GITHUB] Falling back to canned projects: %v", err)
		return FallbackProjects(f.username)
	}

	if len(repos) > maxProjects {
		repos = repos[:maxProjects]
	}

	results := make([]candidateResult, len(repos))

	g := new(errgroup.Group)
	g.SetLimit(maxProjects)

	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			results[i] = f.processCandidate(ctx, repo)
			return nil
		})
	}
	_ = g.Wait()

	projects := []Project{}
	for _, res := range results {
		if res.skipped {
			logrus.Warnf("[GITHUB] Skipping repository: %v", res.reason)
			continue
		}
		projects = append(projects, res.project)
	}

	return ProjectFetchResult{
		Success:  true,
		Projects: projects,
		Message:  fmt.Sprintf("Successfully fetched %d repositories", len(projects)),
	}
}

func (f *Fetcher) listRepositories(ctx context.Context) ([]repoAPIResponse, error) {
	listURL := fmt.Sprintf("%s/users/%s/repos", f.baseURL, f.username)

	params := map[string]string{
		"sort":      "updated",
		"direction": "desc",
		"per_page":  fmt.Sprintf("%d", listPageSize),
		"type":      "public",
	}

	resp, err := utils.Request(ctx, f.client, http.MethodGet, listURL, f.authHeader(), &params, nil)
	if err != nil {
		return nil, fmt.Errorf("repository listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("repository listing returned %s", resp.Status)
	}

	var repos []repoAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("repository listing decode failed: %w", err)
	}

	return repos, nil
}

// processCandidate normalizes one listed repository. A missing name or an
// unparseable timestamp skips the candidate; the readme fetch guards its
// own failures and never does.
func (f *Fetcher) processCandidate(ctx context.Context, repo repoAPIResponse) candidateResult {
	if repo.Name == "" {
		return candidateResult{skipped: true, reason: fmt.Errorf("repository entry without a name")}
	}

	// The listing reports updated_at with a Z suffix; RFC3339 parses it
	// straight to UTC.
	lastUpdated, err := time.Parse(time.RFC3339, repo.UpdatedAt)
	if err != nil {
		return candidateResult{skipped: true, reason: fmt.Errorf("repository %s has bad updated_at %q: %w", repo.Name, repo.UpdatedAt, err)}
	}

	stars := repo.StargazersCount
	if stars < 0 {
		stars = 0
	}

	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return candidateResult{
		project: Project{
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.HTMLURL,
			Stars:       stars,
			Language:    repo.Language,
			Topics:      topics,
			LastUpdated: lastUpdated.UTC(),
			Readme:      f.fetchReadmeExcerpt(ctx, repo.Name),
		},
	}
}

// fetchReadmeExcerpt returns the first 500 characters of the repository
// readme, with a truncation marker when cut. Every failure resolves to the
// "README not available" text so the parent candidate is unaffected.
func (f *Fetcher) fetchReadmeExcerpt(ctx context.Context, repoName string) string {
	readmeURL := fmt.Sprintf("%s/repos/%s/%s/readme", f.baseURL, f.username, repoName)

	resp, err := utils.Request(ctx, f.client, http.MethodGet, readmeURL, f.authHeader(), nil, nil)
	if err != nil {
		logrus.Warnf("[GITHUB] Error fetching README for %s: %v", repoName, err)
		return readmeFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readmeFallback
	}

	var readme readmeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&readme); err != nil {
		logrus.Warnf("[GITHUB] Error decoding README for %s: %v", repoName, err)
		return readmeFallback
	}

	// Base64 payloads from the API are newline wrapped.
	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(readme.Content, "\n", ""))
	if err != nil {
		logrus.Warnf("[GITHUB] Error decoding README content for %s: %v", repoName, err)
		return readmeFallback
	}

	return truncateReadme(string(content))
}

// truncateReadme cuts text to readmeCutoff characters and appends the
// marker. Counts runes, not bytes.
func truncateReadme(text string) string {
	if utf8.RuneCountInString(text) <= readmeCutoff {
		return text
	}
	return string([]rune(text)[:readmeCutoff]) + truncationMark
}

func (f *Fetcher) authHeader() *map[string]string {
	if f.token == "" {
		return nil
	}
	return &map[string]string{
		"Authorization": "token " + f.token,
	}
}
