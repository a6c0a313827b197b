package contributions

import (
	"fmt"
	"time"

	"github.com/jmcampanini/folio/internal/github"
)

// Card is one rendered contribution.
type Card struct {
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	Description string     `json:"description,omitempty"`
	Index       int        `json:"index"` // 1-based position across all pages
	Number      int        `json:"number,omitempty"`
	PR          string     `json:"pr"` // display reference, e.g. "#42"
	Repo        string     `json:"repo"`
	State       string     `json:"state,omitempty"`  // raw state, used as a style class
	Status      string     `json:"status,omitempty"` // "Merged" or the raw state
	Title       string     `json:"title,omitempty"`
	URL         string     `json:"url"`
}

// CardFromPullRequest builds the card for a search hit at the given
// 1-based index.
func CardFromPullRequest(pr github.PullRequest, index int) Card {
	return Card{
		ClosedAt: pr.ClosedAt,
		Index:    index,
		Number:   pr.Number,
		PR:       fmt.Sprintf("#%d", pr.Number),
		Repo:     pr.RepoName(),
		State:    pr.State.String(),
		Status:   pr.StatusLabel(),
		Title:    pr.Title,
		URL:      pr.HTMLURL,
	}
}

// ClosedDate formats the close date for display, or "" when unknown.
func (c Card) ClosedDate() string {
	if c.ClosedAt == nil {
		return ""
	}
	return c.ClosedAt.Format("Jan 2, 2006")
}
