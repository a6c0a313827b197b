package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmcampanini/folio/internal/config"
	"github.com/jmcampanini/folio/internal/contributions"
	"github.com/jmcampanini/folio/internal/github"
	"github.com/jmcampanini/folio/internal/piston"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print current configuration in TOML format",
	Long: `Print the current effective configuration in TOML format.

This outputs the merged configuration (defaults with any user overrides applied),
preceded by a comment naming each folio.toml that was applied.
The output can be redirected to a file to create a new configuration:

  folio config > folio.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	result, err := loadConfigResult()
	if err != nil {
		return err
	}
	return outputConfig(cmd, result)
}

func outputConfig(cmd *cobra.Command, result config.LoadResult) error {
	var buf bytes.Buffer
	if len(result.SourcePaths) == 0 {
		buf.WriteString("# defaults only, no folio.toml found\n")
	}
	for _, path := range result.SourcePaths {
		fmt.Fprintf(&buf, "# from %s\n", path)
	}

	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(result.Config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}

// loadConfig loads the layered configuration for the current directory.
func loadConfig() (config.Config, error) {
	result, err := loadConfigResult()
	if err != nil {
		return config.Config{}, err
	}
	return result.Config, nil
}

func loadConfigResult() (config.LoadResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.LoadResult{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.LoadResult{}, fmt.Errorf("failed to get user home directory: %w", err)
	}

	result, err := config.NewDefaultLoader().Load(config.ConfigPaths(cwd, homeDir))
	if err != nil {
		return config.LoadResult{}, fmt.Errorf("failed to load config: %w", err)
	}
	clog.Debug("Using config files", "paths", result.SourcePaths)
	return result, nil
}

func newContributionSource(cfg config.Config) (contributions.Source, error) {
	if cfg.Contributions.Source == config.SourceStatic {
		return contributions.NewStaticSource(cfg.Contributions.StaticFile), nil
	}

	client, err := github.New(cfg.GitHub.APIURL, cfg.GitHub.Timeout)
	if err != nil {
		return nil, err
	}
	return contributions.NewSearchSource(client, cfg.GitHub.Author), nil
}

func newPistonClient(cfg config.Config) *piston.Client {
	return piston.New(cfg.Playground.BaseURL, cfg.Playground.Timeout)
}
