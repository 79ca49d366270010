package github

import "time"

type GithubHandler struct {
	Fetcher *Fetcher
}

// Project is one upstream repository normalized for display. Built fresh on
// every fetch, never persisted.
type Project struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Stars       int       `json:"stars"`
	Language    string    `json:"language,omitempty"`
	Topics      []string  `json:"topics"`
	LastUpdated time.Time `json:"lastUpdated"`
	Readme      string    `json:"readme,omitempty"`
}

type ProjectFetchResult struct {
	Success  bool      `json:"success"`
	Projects []Project `json:"projects"`
	Message  string    `json:"message"`
}

// Mapping of the repository listing response.
type repoAPIResponse struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	HTMLURL         string   `json:"html_url"`
	StargazersCount int      `json:"stargazers_count"`
	Language        string   `json:"language"`
	Topics          []string `json:"topics"`
	UpdatedAt       string   `json:"updated_at"`
}

// Mapping of the readme response. Content arrives base64 encoded.
type readmeAPIResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
