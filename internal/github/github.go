package github

import "context"

type Searcher interface {
	// SearchPullRequests returns one page of pull requests matching the query.
	// Pages are 1-based.
	SearchPullRequests(ctx context.Context, query PRQuery, page, perPage int) (SearchResult, error)
}
