package config

import "time"

// DefaultConfig returns sensible defaults for all configuration.
func DefaultConfig() Config {
	return Config{
		Contributions: ContributionsConfig{
			PerPage: 6,
			Source:  SourceSearch,
		},
		GitHub: GitHubConfig{
			APIURL:  "https://api.github.com/",
			Author:  "varunkasyap",
			Timeout: 10 * time.Second,
		},
		Playground: PlaygroundConfig{
			BaseURL:           "https://emkc.org/api/v2/piston",
			PreferredLanguage: "python",
			Timeout:           15 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
