package github

import (
	"strings"
	"time"
)

type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
	PRStateMerged PRState = "merged" // Virtual state: the search API reports closed + merged_at
)

func (s PRState) String() string {
	return string(s)
}

func (s PRState) IsValid() bool {
	switch s {
	case PRStateOpen, PRStateClosed, PRStateMerged:
		return true
	}
	return false
}

// PRQuery specifies filters for searching pull requests.
type PRQuery struct {
	Author string  // empty = any author
	State  PRState // PRStateMerged when empty or unrecognized
}

// ToSearchQuery converts the query to a GitHub issue search string.
func (q PRQuery) ToSearchQuery() string {
	state := q.State
	if !state.IsValid() {
		state = PRStateMerged
	}

	parts := []string{"is:pr"}
	switch state {
	case PRStateOpen:
		parts = append(parts, "is:open")
	case PRStateClosed:
		parts = append(parts, "is:closed", "is:unmerged")
	case PRStateMerged:
		parts = append(parts, "is:merged")
	}

	if q.Author != "" {
		parts = append(parts, "author:"+q.Author)
	}

	return strings.Join(parts, " ")
}

// PullRequest is a single search hit. The search API returns pull requests
// as issues, so the merge time lives on the nested pull request links.
type PullRequest struct {
	ClosedAt      *time.Time
	HTMLURL       string
	MergedAt      *time.Time
	Number        int
	RepositoryURL string // API URL, e.g. https://api.github.com/repos/owner/repo
	State         PRState
	Title         string
}

// RepoName returns "owner/repo" taken from the last two segments of the
// repository URL.
func (pr PullRequest) RepoName() string {
	parts := strings.Split(strings.TrimRight(pr.RepositoryURL, "/"), "/")
	if len(parts) < 2 {
		return pr.RepositoryURL
	}
	return strings.Join(parts[len(parts)-2:], "/")
}

// IsMerged reports whether the pull request was closed by a merge.
func (pr PullRequest) IsMerged() bool {
	return pr.State == PRStateClosed && pr.MergedAt != nil
}

// StatusLabel returns "Merged" for merged pull requests and the raw state
// otherwise.
func (pr PullRequest) StatusLabel() string {
	if pr.IsMerged() {
		return "Merged"
	}
	return pr.State.String()
}

// SearchResult is one page of search hits plus the total across all pages.
type SearchResult struct {
	PullRequests []PullRequest
	TotalCount   int
}
