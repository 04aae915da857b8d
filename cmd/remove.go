package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s, _ := openStore()
	if err := s.Remove(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Removing an unknown id is a silent no-op, so the message stays the same
	// either way. Removal is immediate and permanent.
	fmt.Printf("Removed event %d\n", id)
	return nil
}
