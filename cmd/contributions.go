package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmcampanini/folio/internal/contributions"
)

var contributionsPageFlag int

var contributionsCmd = &cobra.Command{
	Use:   "contributions",
	Short: "List merged contributions",
	Long: `List one page of merged contributions as a table.

The page size and source (GitHub search or a static JSON file) come from the
configuration. A pagination line follows the table when there is more than
one page, with the current page in brackets:

  < Prev 1 ... 4 [5] 6 ... 10 Next >`,
	Args: cobra.NoArgs,
	RunE: runContributions,
}

func init() {
	contributionsCmd.Flags().IntVarP(&contributionsPageFlag, "page", "p", 1, "Page number (1-based)")
	rootCmd.AddCommand(contributionsCmd)
}

func runContributions(cmd *cobra.Command, _ []string) error {
	if contributionsPageFlag < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", contributionsPageFlag)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := newContributionSource(cfg)
	if err != nil {
		return err
	}

	loader := contributions.NewLoader(source, cfg.Contributions.PerPage, contributions.DisplayFunc(func(v contributions.View) {
		if v.Status == contributions.StatusLoading {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), v.Message)
		}
	}))

	view := loader.LoadPage(cmd.Context(), contributionsPageFlag)
	if view.Status == contributions.StatusError {
		return errors.New(view.Message)
	}
	return outputContributionsTable(cmd, view)
}

// outputContributionsTable renders a lipgloss table followed by the
// pagination line.
func outputContributionsTable(cmd *cobra.Command, view contributions.View) error {
	if len(view.Cards) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), contributions.EmptyMessage)
		return err
	}

	purple := lipgloss.Color("99")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	headerStyle := lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddRowStyle := cellStyle.Foreground(gray)
	evenRowStyle := cellStyle.Foreground(lightGray)

	rows := make([][]string, len(view.Cards))
	for i, card := range view.Cards {
		summary := card.Title
		if summary == "" {
			summary = card.Description
		}

		closed := ""
		if card.ClosedAt != nil {
			closed = humanize.Time(*card.ClosedAt)
		}

		rows[i] = []string{
			fmt.Sprintf("%d", card.Index),
			card.Repo,
			card.PR,
			truncateString(summary, 50),
			card.Status,
			closed,
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("#", "Repository", "PR", "Summary", "Status", "Closed").
		Rows(rows...)

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), t); err != nil {
		return err
	}

	if line := formatPagination(view.Pagination); line != "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
		return err
	}
	return nil
}

// formatPagination renders pagination controls as one line, or "" when
// everything fits on one page. Disabled steps are left out.
func formatPagination(p contributions.Pagination) string {
	if !p.Visible {
		return ""
	}

	parts := make([]string, 0, len(p.Pages)+2)
	if !p.Prev.Disabled {
		parts = append(parts, "< Prev")
	}
	for _, link := range p.Pages {
		switch {
		case link.Ellipsis:
			parts = append(parts, "...")
		case link.Active:
			parts = append(parts, fmt.Sprintf("[%d]", link.Page))
		default:
			parts = append(parts, fmt.Sprintf("%d", link.Page))
		}
	}
	if !p.Next.Disabled {
		parts = append(parts, "Next >")
	}
	return strings.Join(parts, " ")
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
