package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	gogithub "github.com/google/go-github/v68/github"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com/"

// Client searches pull requests through the GitHub REST search API.
// Requests are unauthenticated.
type Client struct {
	gh      *gogithub.Client
	log     *clog.Logger
	timeout time.Duration
}

var _ Searcher = &Client{}

// New creates a Client against apiURL. An empty apiURL uses DefaultAPIURL.
// A zero timeout leaves requests unbounded.
func New(apiURL string, timeout time.Duration) (*Client, error) {
	gh := gogithub.NewClient(&http.Client{})

	if apiURL != "" && apiURL != DefaultAPIURL {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		gh.BaseURL = baseURL
	}

	return &Client{
		gh:      gh,
		log:     clog.Default().WithPrefix("github"),
		timeout: timeout,
	}, nil
}

func (c *Client) SearchPullRequests(ctx context.Context, query PRQuery, page, perPage int) (SearchResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	q := query.ToSearchQuery()
	c.log.Debug("Searching pull requests", "query", q, "page", page, "perPage", perPage)

	opts := &gogithub.SearchOptions{
		ListOptions: gogithub.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}
	result, _, err := c.gh.Search.Issues(ctx, q, opts)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			c.log.Warn("Pull request search timed out", "query", q, "timeout", c.timeout)
			return SearchResult{}, fmt.Errorf("search %q timed out after %s", q, c.timeout)
		}
		return SearchResult{}, fmt.Errorf("failed to search pull requests: %w", err)
	}

	prs := make([]PullRequest, 0, len(result.Issues))
	for _, issue := range result.Issues {
		prs = append(prs, fromIssue(issue))
	}

	c.log.Debug("Pull request search succeeded", "total", result.GetTotal(), "returned", len(prs))
	return SearchResult{
		PullRequests: prs,
		TotalCount:   result.GetTotal(),
	}, nil
}

func fromIssue(issue *gogithub.Issue) PullRequest {
	pr := PullRequest{
		HTMLURL:       issue.GetHTMLURL(),
		Number:        issue.GetNumber(),
		RepositoryURL: issue.GetRepositoryURL(),
		State:         PRState(issue.GetState()),
		Title:         issue.GetTitle(),
	}
	if issue.ClosedAt != nil {
		closed := issue.ClosedAt.Time
		pr.ClosedAt = &closed
	}
	if links := issue.PullRequestLinks; links != nil && links.MergedAt != nil {
		merged := links.MergedAt.Time
		pr.MergedAt = &merged
	}
	return pr
}
