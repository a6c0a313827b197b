package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Contributions defaults
	assert.Equal(t, 6, cfg.Contributions.PerPage)
	assert.Equal(t, SourceSearch, cfg.Contributions.Source)
	assert.Empty(t, cfg.Contributions.StaticFile)

	// GitHub defaults
	assert.Equal(t, "https://api.github.com/", cfg.GitHub.APIURL)
	assert.Equal(t, "varunkasyap", cfg.GitHub.Author)
	assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout)

	// Playground defaults
	assert.Equal(t, "https://emkc.org/api/v2/piston", cfg.Playground.BaseURL)
	assert.Equal(t, "python", cfg.Playground.PreferredLanguage)
	assert.Equal(t, 15*time.Second, cfg.Playground.Timeout)

	assert.Equal(t, ":8080", cfg.Server.Addr)

	// Default config should be valid
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: "",
		},
		{
			name: "zero per page",
			modify: func(c *Config) {
				c.Contributions.PerPage = 0
			},
			wantErr: "contributions.per_page must be at least 1",
		},
		{
			name: "unknown source",
			modify: func(c *Config) {
				c.Contributions.Source = "gitlab"
			},
			wantErr: `contributions.source must be "search" or "static"`,
		},
		{
			name: "search without author",
			modify: func(c *Config) {
				c.GitHub.Author = ""
			},
			wantErr: `github.author is required when contributions.source is "search"`,
		},
		{
			name: "static without file",
			modify: func(c *Config) {
				c.Contributions.Source = SourceStatic
			},
			wantErr: `contributions.static_file is required when contributions.source is "static"`,
		},
		{
			name: "static with file and no author is valid",
			modify: func(c *Config) {
				c.Contributions.Source = SourceStatic
				c.Contributions.StaticFile = "contributions.json"
				c.GitHub.Author = ""
			},
			wantErr: "",
		},
		{
			name: "negative github timeout",
			modify: func(c *Config) {
				c.GitHub.Timeout = -1 * time.Second
			},
			wantErr: "github.timeout cannot be negative",
		},
		{
			name: "negative playground timeout",
			modify: func(c *Config) {
				c.Playground.Timeout = -1 * time.Second
			},
			wantErr: "playground.timeout cannot be negative",
		},
		{
			name: "empty playground url",
			modify: func(c *Config) {
				c.Playground.BaseURL = ""
			},
			wantErr: "playground.base_url cannot be empty",
		},
		{
			name: "zero timeouts are valid",
			modify: func(c *Config) {
				c.GitHub.Timeout = 0
				c.Playground.Timeout = 0
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestConfigPaths(t *testing.T) {
	tests := []struct {
		name      string
		cwd       string
		homeDir   string
		wantOrder []string // expected order (subset, for key paths)
	}{
		{
			name:    "cwd below home",
			cwd:     "/Users/jim/site",
			homeDir: "/Users/jim",
			wantOrder: []string{
				"/Users/jim/folio.toml",      // home
				"/Users/jim/site/folio.toml", // cwd (highest)
			},
		},
		{
			name:      "cwd is home",
			cwd:       "/Users/jim",
			homeDir:   "/Users/jim",
			wantOrder: []string{"/Users/jim/folio.toml"},
		},
		{
			name:      "empty home",
			cwd:       "/srv/folio",
			homeDir:   "",
			wantOrder: []string{"/srv/folio/folio.toml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := ConfigPaths(tt.cwd, tt.homeDir)

			var foundOrder []string
			for _, p := range paths {
				for _, expected := range tt.wantOrder {
					if p == expected {
						foundOrder = append(foundOrder, p)
					}
				}
			}
			assert.Equal(t, tt.wantOrder, foundOrder, "paths should be in priority order (lowest to highest)")
			assert.Equal(t, tt.wantOrder[len(tt.wantOrder)-1], paths[len(paths)-1], "cwd should have highest priority")

			seen := make(map[string]bool)
			for _, p := range paths {
				assert.False(t, seen[p], "duplicate path: %s", p)
				seen[p] = true
			}
		})
	}
}

// fakeFileSystem is a test double for FileSystem
type fakeFileSystem struct {
	existingFiles map[string]bool
}

func (f *fakeFileSystem) Exists(path string) bool {
	return f.existingFiles[path]
}

func TestLoad_MissingFile(t *testing.T) {
	fs := &fakeFileSystem{existingFiles: map[string]bool{}}
	loader := NewLoader(fs)

	result, err := loader.Load([]string{"/nonexistent/folio.toml"})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), result.Config)
	assert.Empty(t, result.SourcePaths)
}

func TestLoad_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "folio.toml")

	tests := []struct {
		name    string
		content string
		check   func(*testing.T, Config)
	}{
		{
			name: "github author only",
			content: `[github]
author = "octocat"
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "octocat", cfg.GitHub.Author)
				// Other defaults should remain
				assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout)
			},
		},
		{
			name: "timeouts",
			content: `[github]
timeout = "3s"

[playground]
timeout = "1m"
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 3*time.Second, cfg.GitHub.Timeout)
				assert.Equal(t, time.Minute, cfg.Playground.Timeout)
			},
		},
		{
			name: "static contributions",
			content: `[contributions]
source = "static"
static_file = "data/contributions.json"
per_page = 10
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, SourceStatic, cfg.Contributions.Source)
				assert.Equal(t, "data/contributions.json", cfg.Contributions.StaticFile)
				assert.Equal(t, 10, cfg.Contributions.PerPage)
			},
		},
		{
			name: "playground and server",
			content: `[playground]
base_url = "http://localhost:2000/api/v2"
preferred_language = "go"

[server]
addr = "127.0.0.1:9000"
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "http://localhost:2000/api/v2", cfg.Playground.BaseURL)
				assert.Equal(t, "go", cfg.Playground.PreferredLanguage)
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
			},
		},
		{
			name:    "empty file",
			content: "",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := os.WriteFile(configPath, []byte(tt.content), 0644)
			require.NoError(t, err)

			loader := NewDefaultLoader()
			result, err := loader.Load([]string{configPath})
			require.NoError(t, err)

			tt.check(t, result.Config)
			assert.Equal(t, []string{configPath}, result.SourcePaths)
		})
	}
}

func TestLoad_SequentialOverlay(t *testing.T) {
	tmpDir := t.TempDir()

	lowPriorityPath := filepath.Join(tmpDir, "low.toml")
	highPriorityPath := filepath.Join(tmpDir, "high.toml")

	lowPriorityContent := `[github]
author = "low"

[contributions]
per_page = 12
`

	highPriorityContent := `[github]
author = "high"
`

	require.NoError(t, os.WriteFile(lowPriorityPath, []byte(lowPriorityContent), 0644))
	require.NoError(t, os.WriteFile(highPriorityPath, []byte(highPriorityContent), 0644))

	loader := NewDefaultLoader()
	result, err := loader.Load([]string{lowPriorityPath, highPriorityPath})
	require.NoError(t, err)

	// High priority should override github.author
	assert.Equal(t, "high", result.Config.GitHub.Author)
	// Low priority should still apply for non-overridden fields
	assert.Equal(t, 12, result.Config.Contributions.PerPage)
	assert.Equal(t, []string{lowPriorityPath, highPriorityPath}, result.SourcePaths)
}

func TestLoad_ZeroValueOverwrite(t *testing.T) {
	tmpDir := t.TempDir()

	firstPath := filepath.Join(tmpDir, "first.toml")
	require.NoError(t, os.WriteFile(firstPath, []byte("[github]\ntimeout = \"30s\"\n"), 0644))

	// Second file explicitly disables the timeout
	secondPath := filepath.Join(tmpDir, "second.toml")
	require.NoError(t, os.WriteFile(secondPath, []byte("[github]\ntimeout = \"0s\"\n"), 0644))

	loader := NewDefaultLoader()
	result, err := loader.Load([]string{firstPath, secondPath})
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), result.Config.GitHub.Timeout)
}

func TestLoad_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "folio.toml")

	invalidContent := `[github
author = "broken`
	require.NoError(t, os.WriteFile(configPath, []byte(invalidContent), 0644))

	loader := NewDefaultLoader()
	_, err := loader.Load([]string{configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), configPath)
}

func TestLoad_InvalidConfigValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "folio.toml")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "zero per_page",
			content: `[contributions]
per_page = 0
`,
			wantErr: "contributions.per_page must be at least 1",
		},
		{
			name: "unknown source",
			content: `[contributions]
source = "ftp"
`,
			wantErr: "contributions.source must be",
		},
		{
			name: "negative timeout",
			content: `[playground]
timeout = "-5s"
`,
			wantErr: "playground.timeout cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			loader := NewDefaultLoader()
			_, err := loader.Load([]string{configPath})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), configPath)
		})
	}
}

func TestLoad_PathIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	dirPath := filepath.Join(tmpDir, "folio.toml")
	require.NoError(t, os.Mkdir(dirPath, 0755))

	loader := NewDefaultLoader()
	result, err := loader.Load([]string{dirPath})
	require.NoError(t, err)

	assert.Empty(t, result.SourcePaths)
	assert.Equal(t, DefaultConfig(), result.Config)
}

func TestOSFileSystem_Exists(t *testing.T) {
	tmpDir := t.TempDir()

	filePath := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("test"), 0644))

	dirPath := filepath.Join(tmpDir, "testdir")
	require.NoError(t, os.Mkdir(dirPath, 0755))

	fs := OSFileSystem{}

	assert.True(t, fs.Exists(filePath))
	assert.False(t, fs.Exists(dirPath))
	assert.False(t, fs.Exists(filepath.Join(tmpDir, "nonexistent")))
}

func TestNewDefaultLoader(t *testing.T) {
	loader := NewDefaultLoader()
	assert.NotNil(t, loader)
	assert.IsType(t, OSFileSystem{}, loader.fs)
}
