package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/avelis/countdowntab/internal/config"
	"github.com/avelis/countdowntab/internal/countdown"
	"github.com/avelis/countdowntab/internal/store"
	"github.com/avelis/countdowntab/internal/timeinput"
)

// openStore loads the configuration and opens the two-tier store. Storage
// setup failures are fatal to the command, not the data.
func openStore() (*store.Store, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	s, err := store.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// The one-time migration must precede every mutation: adding to a not yet
	// migrated sync tier would be overwritten when the migration later copies
	// the local set across.
	if err := s.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: migration not completed, will retry: %v\n", err)
	}
	return s, cfg
}

// validateSubmission applies the shared submission rules: name and date must
// be present, the date must be a real calendar date, and a non-all-day time
// must be a valid 24-hour HH:MM. The returned time pointer is nil for all-day
// events and canonical (two hour digits) otherwise.
func validateSubmission(name, date, rawTime string, allDay bool) (*string, error) {
	if name == "" || date == "" {
		return nil, errors.New("please fill in the event name and date")
	}
	if _, err := countdown.ParseDate(date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	if allDay {
		return nil, nil
	}
	// A value that already passes submission validation is kept as typed; the
	// keystroke mask only rescues bare digits and partial input, since
	// re-masking a colon-bearing value would misread its digits as the hour.
	t := rawTime
	if !timeinput.Valid(t) {
		t = timeinput.Finalize(timeinput.Mask(rawTime))
	}
	if !timeinput.Valid(t) {
		return nil, errors.New("please enter a valid time (HH:MM) in 24-hour format")
	}
	t = timeinput.Canonical(t)
	return &t, nil
}
