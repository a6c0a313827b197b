package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jmcampanini/folio/internal/playground"
)

var runtimesCmd = &cobra.Command{
	Use:   "runtimes",
	Short: "List languages available to the playground",
	Long: `List the language runtimes advertised by the code execution service,
sorted by language. The "Default" column marks the language the page
preselects.`,
	Args: cobra.NoArgs,
	RunE: runRuntimes,
}

func init() {
	rootCmd.AddCommand(runtimesCmd)
}

func runRuntimes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runner := playground.NewRunner(newPistonClient(cfg), cfg.Playground.PreferredLanguage, nil)
	sel, err := runner.DiscoverRuntimes(cmd.Context())
	if err != nil {
		return err
	}
	return outputRuntimesTable(cmd, sel)
}

func outputRuntimesTable(cmd *cobra.Command, sel playground.Selector) error {
	if len(sel.Options) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No runtimes available.")
		return err
	}

	purple := lipgloss.Color("99")
	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, len(sel.Options))
	for i, opt := range sel.Options {
		marker := ""
		if opt.Language == sel.Selected {
			marker = "\u2713" // checkmark
		}
		rows[i] = []string{opt.Language, opt.Version, marker}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Language", "Version", "Default").
		Rows(rows...)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), t)
	return err
}
