// Package contributions loads pages of the author's contributions and turns
// them into render-ready views with pagination controls.
package contributions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	clog "github.com/charmbracelet/log"
)

// User-facing messages.
const (
	LoadingMessage = "Loading contributions..."
	EmptyMessage   = "No contributions found."
	ErrorMessage   = "Error loading contributions. Please check the server logs."
)

// ErrInvalidPage is returned by ParsePage for anything but a positive integer.
var ErrInvalidPage = errors.New("page must be a positive integer")

// ParsePage parses a 1-based page number. An empty string means page 1.
func ParsePage(s string) (int, error) {
	if s == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, s)
	}
	return page, nil
}

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// View is the render instruction for the contributions region.
type View struct {
	Cards      []Card     `json:"cards"`
	Message    string     `json:"message,omitempty"`
	Page       int        `json:"page"`
	Pagination Pagination `json:"pagination"`
	Stale      bool       `json:"stale,omitempty"` // superseded by a newer load; never displayed
	Status     Status     `json:"status"`
	TotalCount int        `json:"totalCount"`
}

// Display receives every view the loader wants shown.
type Display interface {
	ShowContributions(View)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(View)

func (f DisplayFunc) ShowContributions(v View) { f(v) }

var discard = DisplayFunc(func(View) {})

// PageState is the loader's pagination state.
type PageState struct {
	CurrentPage int
	PerPage     int
	TotalCount  int
}

// Loader loads pages from a Source and reports views to a Display. Each load
// starts a new generation; results from older generations are dropped.
type Loader struct {
	display Display
	log     *clog.Logger
	source  Source

	mu         sync.Mutex
	generation uint64
	state      PageState

	// displayMu orders display calls; mu is never held while displaying.
	displayMu sync.Mutex
}

// NewLoader creates a Loader at page 1. A nil display discards views.
func NewLoader(source Source, perPage int, display Display) *Loader {
	if display == nil {
		display = discard
	}
	return &Loader{
		display: display,
		log:     clog.Default().WithPrefix("contributions"),
		source:  source,
		state:   PageState{CurrentPage: 1, PerPage: perPage},
	}
}

// State returns a copy of the current page state.
func (l *Loader) State() PageState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// LoadPage loads page (clamped to at least 1) and returns the resulting view.
// A loading view is shown before the fetch. If another LoadPage started
// while this one was in flight, the returned view is marked Stale and is not
// shown.
func (l *Loader) LoadPage(ctx context.Context, page int) View {
	if page < 1 {
		page = 1
	}

	l.mu.Lock()
	l.state.CurrentPage = page
	l.generation++
	gen := l.generation
	perPage := l.state.PerPage
	l.mu.Unlock()

	l.show(gen, View{Status: StatusLoading, Message: LoadingMessage, Page: page})

	result, err := l.source.Fetch(ctx, page, perPage)

	view, ok := l.finish(gen, page, perPage, result, err)
	if !ok || !l.show(gen, view) {
		l.log.Debug("Dropping stale contributions page", "page", page, "generation", gen)
		return View{Status: StatusLoading, Page: page, Stale: true}
	}
	return view
}

// finish records a fetch outcome and builds its view, unless a newer load
// has started.
func (l *Loader) finish(gen uint64, page, perPage int, result Page, err error) (View, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		return View{}, false
	}

	var view View
	switch {
	case err != nil:
		l.log.Error("Failed to load contributions", "page", page, "error", err)
		view = View{Status: StatusError, Message: ErrorMessage, Page: page, TotalCount: l.state.TotalCount}
	case len(result.Cards) == 0:
		view = View{Status: StatusEmpty, Message: EmptyMessage, Page: page, TotalCount: l.state.TotalCount}
	default:
		l.state.TotalCount = result.TotalCount
		view = View{
			Cards:      result.Cards,
			Page:       page,
			Pagination: Paginate(result.TotalCount, perPage, page),
			Status:     StatusReady,
			TotalCount: result.TotalCount,
		}
	}
	return view, true
}

// show hands v to the display if gen is still the latest load.
func (l *Loader) show(gen uint64, v View) bool {
	l.displayMu.Lock()
	defer l.displayMu.Unlock()

	l.mu.Lock()
	latest := gen == l.generation
	l.mu.Unlock()

	if latest {
		l.display.ShowContributions(v)
	}
	return latest
}
