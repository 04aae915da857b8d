package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/avelis/countdowntab/internal/model"
)

// Migrate performs the one-time move of legacy local data into the
// synchronized tier, splitting any combined "YYYY-MM-DDTHH:MM" dates into the
// current {date, time} shape on the way. It is guarded by a migrated flag in
// local storage, and the flag is only set after the synchronized write
// succeeds, so a failed run is retried on the next load. The split transform
// is idempotent, which makes the at-least-once retry safe.
//
// Failure never blocks loading: callers log the returned error and proceed
// with whatever data is currently readable.
func (s *Store) Migrate() error {
	// Without a synchronized tier there is nowhere to migrate into; the flag
	// stays unset so configuring one later still triggers the move.
	if s.sync == nil {
		return nil
	}
	if s.migrated() {
		return nil
	}

	data, err := s.local.Get(KeyEvents)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return fmt.Errorf("decoding local events for migration: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	split := make([]model.Event, len(events))
	for i, e := range events {
		split[i] = e.SplitLegacy()
	}

	out, err := json.MarshalIndent(split, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding migrated events: %w", err)
	}
	if err := s.sync.Set(KeyEvents, out); err != nil {
		return fmt.Errorf("writing migrated events: %w", err)
	}

	if err := s.local.Set(KeyMigrated, []byte("true")); err != nil {
		return fmt.Errorf("setting migrated flag: %w", err)
	}
	return nil
}

// MigrateAndLoad runs the migration, logging a failure as a warning, and then
// loads the event collection. This is the normal load path for every surface.
func (s *Store) MigrateAndLoad() ([]model.Event, error) {
	if err := s.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: migration not completed, will retry: %v\n", err)
	}
	return s.Events()
}

// migrated reports whether the one-time migration already ran. The flag lives
// in the local tier only.
func (s *Store) migrated() bool {
	data, err := s.local.Get(KeyMigrated)
	return err == nil && string(data) == "true"
}
