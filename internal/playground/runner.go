// Package playground runs user code on a remote runtime and formats the
// result for display.
package playground

import (
	"context"
	"fmt"
	"sync"

	clog "github.com/charmbracelet/log"

	"github.com/jmcampanini/folio/internal/piston"
)

// User-facing messages.
const (
	SelectLanguageMessage = "Please select a language."
	RunningMessage        = "Running..."
	NoOutputMessage       = "No output"
	ExecutionErrorMessage = "Error executing code."
	NetworkErrorMessage   = "Network error or API issue."
)

// Executor is the remote side of the playground.
type Executor interface {
	Runtimes(ctx context.Context) ([]piston.Runtime, error)
	Execute(ctx context.Context, req piston.ExecuteRequest) (piston.ExecuteResponse, error)
}

// Display receives every output text the runner wants shown.
type Display interface {
	ShowOutput(string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(string)

func (f DisplayFunc) ShowOutput(s string) { f(s) }

var discard = DisplayFunc(func(string) {})

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
)

// RunInput is what the user submitted with the Run action.
type RunInput struct {
	Language string `json:"language"`
	Source   string `json:"source"`
	Version  string `json:"version"`
}

// Result is the outcome of one Run.
type Result struct {
	Output string `json:"output"`
	Stale  bool   `json:"stale,omitempty"` // superseded by a newer run; never displayed
}

// FormatRun turns an execution response into the text shown to the user.
func FormatRun(resp piston.ExecuteResponse) string {
	if resp.Run == nil {
		return ExecutionErrorMessage
	}
	switch {
	case resp.Run.Output != "":
		return resp.Run.Output
	case resp.Run.Stderr != "":
		return "Error:\n" + resp.Run.Stderr
	default:
		return NoOutputMessage
	}
}

// Runner discovers runtimes and executes code. Runs are not mutually
// exclusive; only the latest run's result is displayed.
type Runner struct {
	display   Display
	executor  Executor
	log       *clog.Logger
	preferred string

	mu         sync.Mutex
	generation uint64
	state      State

	// displayMu orders display calls; mu is never held while displaying.
	displayMu sync.Mutex
}

// NewRunner creates a Runner. A nil display discards output.
func NewRunner(executor Executor, preferredLanguage string, display Display) *Runner {
	if display == nil {
		display = discard
	}
	return &Runner{
		display:   display,
		executor:  executor,
		log:       clog.Default().WithPrefix("playground"),
		preferred: preferredLanguage,
		state:     StateIdle,
	}
}

// State reports whether the latest run is still outstanding.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// DiscoverRuntimes fetches the runtime list and builds the selector.
func (r *Runner) DiscoverRuntimes(ctx context.Context) (Selector, error) {
	runtimes, err := r.executor.Runtimes(ctx)
	if err != nil {
		r.log.Error("Failed to discover runtimes", "error", err)
		return Selector{}, fmt.Errorf("failed to discover runtimes: %w", err)
	}
	sel := NewSelector(runtimes, r.preferred)
	r.log.Debug("Discovered runtimes", "count", len(sel.Options), "selected", sel.Selected)
	return sel, nil
}

// Run validates in, executes it, and returns the text to display. Missing
// language or version short-circuits without contacting the executor.
func (r *Runner) Run(ctx context.Context, in RunInput) Result {
	if in.Language == "" || in.Version == "" {
		r.displayMu.Lock()
		r.display.ShowOutput(SelectLanguageMessage)
		r.displayMu.Unlock()
		return Result{Output: SelectLanguageMessage}
	}

	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.state = StateRunning
	r.mu.Unlock()

	r.show(gen, RunningMessage)

	resp, err := r.executor.Execute(ctx, piston.ExecuteRequest{
		Files:    []piston.File{{Content: in.Source}},
		Language: in.Language,
		Version:  in.Version,
	})

	if err != nil {
		r.log.Error("Code execution failed", "language", in.Language, "version", in.Version, "error", err)
	}

	r.mu.Lock()
	latest := gen == r.generation
	if latest {
		r.state = StateIdle
	}
	r.mu.Unlock()

	var output string
	if err != nil {
		output = NetworkErrorMessage
	} else {
		output = FormatRun(resp)
	}

	if !latest || !r.show(gen, output) {
		r.log.Debug("Dropping stale run result", "language", in.Language, "generation", gen)
		return Result{Stale: true}
	}
	return Result{Output: output}
}

// show hands text to the display if gen is still the latest run.
func (r *Runner) show(gen uint64, text string) bool {
	r.displayMu.Lock()
	defer r.displayMu.Unlock()

	r.mu.Lock()
	latest := gen == r.generation
	r.mu.Unlock()

	if latest {
		r.display.ShowOutput(text)
	}
	return latest
}
