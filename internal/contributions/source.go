package contributions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmcampanini/folio/internal/github"
)

// Page is one page of contributions plus the total across all pages.
type Page struct {
	Cards      []Card
	TotalCount int
}

// Source fetches a 1-based page of contributions at a fixed page size.
type Source interface {
	Fetch(ctx context.Context, page, perPage int) (Page, error)
}

// SearchSource lists an author's merged pull requests from GitHub search.
type SearchSource struct {
	query    github.PRQuery
	searcher github.Searcher
}

var _ Source = &SearchSource{}

func NewSearchSource(searcher github.Searcher, author string) *SearchSource {
	return &SearchSource{
		query:    github.PRQuery{Author: author, State: github.PRStateMerged},
		searcher: searcher,
	}
}

func (s *SearchSource) Fetch(ctx context.Context, page, perPage int) (Page, error) {
	result, err := s.searcher.SearchPullRequests(ctx, s.query, page, perPage)
	if err != nil {
		return Page{}, err
	}

	offset := (page - 1) * perPage
	cards := make([]Card, len(result.PullRequests))
	for i, pr := range result.PullRequests {
		cards[i] = CardFromPullRequest(pr, offset+i+1)
	}
	return Page{Cards: cards, TotalCount: result.TotalCount}, nil
}

// StaticEntry is one record of the static contributions file.
type StaticEntry struct {
	Description string `json:"description"`
	PR          prRef  `json:"pr"`
	Project     string `json:"project"`
	URL         string `json:"url"`
}

// prRef accepts the pr field as either a number or a string.
type prRef string

func (r *prRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = prRef("#" + strconv.Itoa(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("pr must be a number or string: %w", err)
	}
	*r = prRef(s)
	return nil
}

// StaticSource serves contributions from a JSON file on disk. The file is
// read on every fetch so edits show up without a restart.
type StaticSource struct {
	path string
}

var _ Source = &StaticSource{}

func NewStaticSource(path string) *StaticSource {
	return &StaticSource{path: path}
}

// LoadStaticEntries reads and decodes a static contributions file.
func LoadStaticEntries(path string) ([]StaticEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contributions file: %w", err)
	}
	var entries []StaticEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse contributions file %s: %w", path, err)
	}
	return entries, nil
}

func (s *StaticSource) Fetch(_ context.Context, page, perPage int) (Page, error) {
	entries, err := LoadStaticEntries(s.path)
	if err != nil {
		return Page{}, err
	}

	start := (page - 1) * perPage
	if start >= len(entries) || start < 0 {
		return Page{TotalCount: len(entries)}, nil
	}
	end := min(start+perPage, len(entries))

	cards := make([]Card, 0, end-start)
	for i, e := range entries[start:end] {
		cards = append(cards, Card{
			Description: e.Description,
			Index:       start + i + 1,
			PR:          string(e.PR),
			Repo:        strings.TrimSpace(e.Project),
			URL:         e.URL,
		})
	}
	return Page{Cards: cards, TotalCount: len(entries)}, nil
}
