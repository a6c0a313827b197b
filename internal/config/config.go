package config

import (
	"errors"
	"time"
)

// Contribution sources.
const (
	SourceSearch = "search"
	SourceStatic = "static"
)

// Config represents the complete folio configuration.
type Config struct {
	Contributions ContributionsConfig `toml:"contributions"`
	GitHub        GitHubConfig        `toml:"github"`
	Playground    PlaygroundConfig    `toml:"playground"`
	Server        ServerConfig        `toml:"server"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.Contributions.PerPage < 1 {
		return errors.New("contributions.per_page must be at least 1")
	}
	switch c.Contributions.Source {
	case SourceSearch:
		if c.GitHub.Author == "" {
			return errors.New("github.author is required when contributions.source is \"search\"")
		}
	case SourceStatic:
		if c.Contributions.StaticFile == "" {
			return errors.New("contributions.static_file is required when contributions.source is \"static\"")
		}
	default:
		return errors.New("contributions.source must be \"search\" or \"static\"")
	}
	if c.GitHub.Timeout < 0 {
		return errors.New("github.timeout cannot be negative")
	}
	if c.Playground.Timeout < 0 {
		return errors.New("playground.timeout cannot be negative")
	}
	if c.Playground.BaseURL == "" {
		return errors.New("playground.base_url cannot be empty")
	}
	return nil
}

// ContributionsConfig configures where contributions come from.
type ContributionsConfig struct {
	PerPage    int    `toml:"per_page"`
	Source     string `toml:"source"`      // "search" or "static"
	StaticFile string `toml:"static_file"` // JSON file used by the static source
}

// GitHubConfig configures the pull request search.
type GitHubConfig struct {
	APIURL  string        `toml:"api_url"`
	Author  string        `toml:"author"`  // login whose merged PRs are listed
	Timeout time.Duration `toml:"timeout"` // 0 disables the timeout
}

// PlaygroundConfig configures the remote code runner.
type PlaygroundConfig struct {
	BaseURL           string        `toml:"base_url"`
	PreferredLanguage string        `toml:"preferred_language"`
	Timeout           time.Duration `toml:"timeout"` // 0 disables the timeout
}

// ServerConfig configures `folio serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}
