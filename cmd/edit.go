package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	editName   string
	editDate   string
	editTime   string
	editAllDay bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New event name")
	editCmd.Flags().StringVar(&editDate, "date", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editTime, "time", "", "New time (HH:MM, 24-hour)")
	editCmd.Flags().BoolVar(&editAllDay, "all-day", false, "Make the event all-day")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	s, _ := openStore()
	events, err := s.Events()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Prefill from the stored event so partial flag sets work like the edit
	// form. An unknown id leaves everything unchanged; that is not an error.
	var name, date, rawTime string
	allDay := editAllDay
	found := false
	for _, e := range events {
		if e.ID == id {
			found = true
			name, date = e.Name, e.Date
			if e.Time != nil {
				rawTime = *e.Time
			} else if !cmd.Flags().Changed("time") {
				allDay = true
			}
		}
	}
	if !found {
		fmt.Printf("No event with id %d; nothing changed.\n", id)
		return nil
	}

	if editName != "" {
		name = strings.TrimSpace(editName)
	}
	if editDate != "" {
		date = editDate
	}
	if cmd.Flags().Changed("time") {
		rawTime = editTime
		allDay = false
	}
	if editAllDay {
		allDay = true
	}

	tm, err := validateSubmission(name, date, rawTime, allDay)
	if err != nil {
		return err
	}

	if err := s.Update(id, name, date, tm); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Updated event %d\n", id)
	return nil
}
