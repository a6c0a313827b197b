// Package piston is a client for the Piston remote code-execution API.
package piston

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Piston instance.
const DefaultBaseURL = "https://emkc.org/api/v2/piston"

// Runtime is a (language, version) pair the service can execute.
type Runtime struct {
	Aliases  []string `json:"aliases,omitempty"`
	Language string   `json:"language"`
	Version  string   `json:"version"`
}

// File is one source file of an execution request.
type File struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	Files    []File `json:"files"`
	Language string `json:"language"`
	Version  string `json:"version"`
}

// RunResult is the run stage of an execution.
type RunResult struct {
	Code   *int   `json:"code,omitempty"`
	Output string `json:"output"`
	Signal string `json:"signal,omitempty"`
	Stderr string `json:"stderr"`
	Stdout string `json:"stdout"`
}

// ExecuteResponse is the decoded reply of POST /execute. Run is nil when the
// service rejected the request; Message then usually says why.
type ExecuteResponse struct {
	Message string     `json:"message,omitempty"`
	Run     *RunResult `json:"run,omitempty"`
}

// Client talks to a Piston instance.
type Client struct {
	log  *clog.Logger
	rest *resty.Client
}

// New creates a Client for baseURL. A zero timeout leaves requests unbounded.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	log := clog.Default().WithPrefix("piston")
	return &Client{
		log: log,
		rest: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetLogger(log),
	}
}

// Runtimes lists the runtimes the service supports.
func (c *Client) Runtimes(ctx context.Context) ([]Runtime, error) {
	var runtimes []Runtime
	if err := c.do(c.request(ctx, &runtimes), resty.MethodGet, "/runtimes"); err != nil {
		return nil, fmt.Errorf("fetching runtimes: %w", err)
	}
	c.log.Debug("Fetched runtimes", "count", len(runtimes))
	return runtimes, nil
}

// Execute submits source for execution. Only transport failures and
// undecodable bodies are errors; a JSON reply without a run result is
// returned as-is.
func (c *Client) Execute(ctx context.Context, execReq ExecuteRequest) (ExecuteResponse, error) {
	c.log.Debug("Executing code", "language", execReq.Language, "version", execReq.Version, "files", len(execReq.Files))

	var resp ExecuteResponse
	if err := c.do(c.request(ctx, &resp).SetBody(execReq), resty.MethodPost, "/execute"); err != nil {
		return ExecuteResponse{}, fmt.Errorf("executing code: %w", err)
	}
	if resp.Run == nil {
		c.log.Warn("Execution returned no run result", "language", execReq.Language, "message", resp.Message)
	}
	return resp, nil
}

// request decodes the body into out whatever the status, so error replies
// carrying a JSON message are read the same way as successes.
func (c *Client) request(ctx context.Context, out any) *resty.Request {
	return c.rest.R().
		SetContext(ctx).
		SetResult(out).
		SetError(out).
		ForceContentType("application/json")
}

func (c *Client) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		if resp != nil && resp.RawResponse != nil {
			c.log.Warn("Undecodable response", "path", path, "status", resp.StatusCode(), "error", err)
			return fmt.Errorf("decoding response (status %d): %w", resp.StatusCode(), err)
		}
		return err
	}
	if resp.IsError() {
		// resty only logs when an error body fails to decode
		if !json.Valid(resp.Body()) {
			c.log.Warn("Undecodable response", "path", path, "status", resp.StatusCode())
			return fmt.Errorf("decoding response (status %d): body is not JSON", resp.StatusCode())
		}
		c.log.Warn("Piston returned an error status", "path", path, "status", resp.StatusCode())
	}
	return nil
}
