package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadResult is the effective folio configuration and the files it came from.
type LoadResult struct {
	Config      Config
	SourcePaths []string // folio.toml files applied, lowest priority first
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	// Exists returns true if the path exists and is a file (not a directory).
	Exists(path string) bool
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Loader layers folio.toml files over DefaultConfig.
type Loader struct {
	fs  FileSystem
	log *log.Logger
}

func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, log: log.Default().WithPrefix("config")}
}

func NewDefaultLoader() *Loader {
	return NewLoader(OSFileSystem{})
}

// Load applies each existing path in order, so later files override earlier
// ones key by key. Missing files are skipped. The merged result must pass
// Validate; the error then names the files that produced it.
func (l *Loader) Load(paths []string) (LoadResult, error) {
	result := LoadResult{Config: DefaultConfig()}

	for _, path := range paths {
		if !l.fs.Exists(path) {
			continue
		}
		if err := l.apply(path, &result.Config); err != nil {
			return LoadResult{}, err
		}
		result.SourcePaths = append(result.SourcePaths, path)
	}

	if err := result.Config.Validate(); err != nil {
		if len(result.SourcePaths) == 0 {
			return LoadResult{}, fmt.Errorf("invalid config: %w", err)
		}
		return LoadResult{}, fmt.Errorf("invalid config (from %s): %w", strings.Join(result.SourcePaths, ", "), err)
	}

	l.log.Debug("Configuration loaded", "sources", result.SourcePaths,
		"contributions", result.Config.Contributions.Source, "playground", result.Config.Playground.BaseURL)
	return result, nil
}

func (l *Loader) apply(path string, cfg *Config) error {
	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		l.log.Warn("Unknown config keys", "path", path, "keys", undecoded)
	}
	l.log.Debug("Applied config file", "path", path)
	return nil
}
