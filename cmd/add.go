package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelis/countdowntab/internal/model"
)

var (
	addDate   string
	addTime   string
	addAllDay bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new countdown event",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Event date (YYYY-MM-DD, default tomorrow)")
	addCmd.Flags().StringVar(&addTime, "time", "12:00", "Event time (HH:MM, 24-hour)")
	addCmd.Flags().BoolVar(&addAllDay, "all-day", false, "All-day event (no specific time)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	now := time.Now()

	// Default date is tomorrow, matching the add form's prefill.
	date := addDate
	if date == "" {
		date = now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	tm, err := validateSubmission(name, date, addTime, addAllDay)
	if err != nil {
		return err
	}

	s, _ := openStore()
	event := model.Event{ID: model.NewID(now), Name: name, Date: date, Time: tm}
	if err := s.Add(event); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	when := "all day"
	if tm != nil {
		when = *tm
	}
	fmt.Printf("Added %q on %s (%s), id %d\n", name, date, when, event.ID)
	return nil
}
