package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "countdowntab",
	Short: "countdowntab – a personal event-countdown tracker",
	Long: `countdowntab keeps a list of named events with a date and optional time and
shows a live countdown to each. Data is stored as JSON under ~/.countdowntab/,
optionally mirrored into a synchronized folder shared across devices.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(themeCmd)
}
