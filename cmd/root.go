package cmd

import (
	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "n/a"

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio server",
	Long: `Folio serves a personal portfolio page: merged open source contributions
and a playground that runs code on a remote runtime.

The same components are available from the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		if debugFlag {
			clog.SetLevel(clog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
