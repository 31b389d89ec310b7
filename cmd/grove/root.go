package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/grove"
)

var (
	// Global flags
	settingsFile string
	verbose      bool

	logger zerolog.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grove",
		Short: "Animated file activity replay",
		Long: `grove replays a custom activity log (timestamp|user|A/M/D|path[|colour])
and animates every touched file: it flashes on activity, fades out when idle
and is collected once fully faded.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = grove.NewConsoleLogger(os.Stderr, verbose)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "TOML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.AddCommand(newReplayCmd())
	return rootCmd
}

// loadSettings returns the settings file's values, or the defaults when no
// file was given.
func loadSettings() (grove.Settings, error) {
	if settingsFile == "" {
		return grove.DefaultSettings(), nil
	}
	return grove.LoadSettings(settingsFile)
}
