package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmcampanini/folio/internal/playground"
)

var (
	runLanguageFlag string
	runVersionFlag  string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run code on the remote runtime",
	Long: `Run a source file (or stdin when no file is given) on the code execution
service and print its output.

The language defaults to playground.preferred_language. Without --version the
version advertised by the service for that language is used.

Examples:
  folio run hello.py
  echo 'fmt.Println(1)' | folio run --language go`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runLanguageFlag, "language", "l", "", "Language to run (default: playground.preferred_language)")
	runCmd.Flags().StringVar(&runVersionFlag, "version", "", "Runtime version (default: discovered)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := readSource(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	language := runLanguageFlag
	if language == "" {
		language = cfg.Playground.PreferredLanguage
	}

	runner := playground.NewRunner(newPistonClient(cfg), cfg.Playground.PreferredLanguage, playground.DisplayFunc(func(s string) {
		if s == playground.RunningMessage {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), s)
		}
	}))

	version := runVersionFlag
	if version == "" {
		sel, err := runner.DiscoverRuntimes(cmd.Context())
		if err != nil {
			return err
		}
		version, _ = sel.Version(language)
	}

	result := runner.Run(cmd.Context(), playground.RunInput{
		Language: language,
		Source:   source,
		Version:  version,
	})

	out := result.Output
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// readSource returns the contents of args[0], or all of stdin when no file
// is given.
func readSource(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read source file: %w", err)
	}
	return string(data), nil
}
