// Package store provides best-effort synchronized persistence with local
// fallback. Every read and write walks an ordered list of backends — the
// synchronized tier first, the always-available local tier second — and the
// first backend that works serves the request. Callers never learn which tier
// answered.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/avelis/countdowntab/internal/config"
	"github.com/avelis/countdowntab/internal/model"
)

// Persistence keys shared with every surface.
const (
	KeyEvents   = "events"
	KeyMigrated = "migrated"
	KeyTheme    = "popupTheme"
	KeyMode     = "popupMode"
)

// ErrNotFound is returned by a working backend that does not hold the key.
// It is distinct from a backend failure: a missing key is an authoritative
// answer and does not trigger fallback to the next tier.
var ErrNotFound = errors.New("store: key not found")

// Backend is one persistence tier.
type Backend interface {
	Name() string
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// diskvBackend is a flat key-to-file KV store. When checkBase is set the base
// directory must already exist for the tier to be considered available; a
// synchronized folder that is not mounted must error rather than be recreated
// locally.
type diskvBackend struct {
	name      string
	base      string
	checkBase bool
	d         *diskv.Diskv
}

// NewLocalBackend builds the always-available local tier rooted at base.
func NewLocalBackend(base string) Backend {
	return newDiskvBackend("local", base, false)
}

// NewSyncBackend builds the synchronized tier rooted at base. The directory
// must already exist for the tier to be available; an unmounted sync folder
// errors instead of being silently recreated on local disk.
func NewSyncBackend(base string) Backend {
	return newDiskvBackend("sync", base, true)
}

func newDiskvBackend(name, base string, checkBase bool) *diskvBackend {
	return &diskvBackend{
		name:      name,
		base:      base,
		checkBase: checkBase,
		d: diskv.New(diskv.Options{
			BasePath:     base,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024,
		}),
	}
}

func (b *diskvBackend) Name() string { return b.name }

func (b *diskvBackend) available() error {
	if !b.checkBase {
		return nil
	}
	info, err := os.Stat(b.base)
	if err != nil {
		return fmt.Errorf("storage tier %s unavailable: %w", b.name, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage tier %s unavailable: %s is not a directory", b.name, b.base)
	}
	return nil
}

func (b *diskvBackend) Get(key string) ([]byte, error) {
	if err := b.available(); err != nil {
		return nil, err
	}
	if !b.d.Has(key) {
		return nil, ErrNotFound
	}
	data, err := b.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s from %s: %w", key, b.name, err)
	}
	return data, nil
}

func (b *diskvBackend) Set(key string, value []byte) error {
	if err := b.available(); err != nil {
		return err
	}
	if err := b.d.Write(key, value); err != nil {
		return fmt.Errorf("storage error writing %s to %s: %w", key, b.name, err)
	}
	return nil
}

// Store is the single abstraction the rest of the program persists through.
type Store struct {
	backends []Backend // priority order, synchronized tier first
	local    Backend   // always-available fallback tier
	sync     Backend   // nil when no synchronized tier is configured
}

// Open builds a Store from the loaded configuration: a synchronized tier
// rooted in cfg.SyncDir when configured, and the local tier under
// ~/.countdowntab/local.
func Open(cfg config.Config) (*Store, error) {
	base, err := config.BaseDir()
	if err != nil {
		return nil, err
	}
	local := NewLocalBackend(filepath.Join(base, "local"))

	var syncTier Backend
	if cfg.SyncDir != "" {
		// Create the app subdirectory only when the sync folder itself is
		// mounted; an absent mount must stay an unavailable tier.
		syncBase := filepath.Join(cfg.SyncDir, "countdowntab")
		if info, statErr := os.Stat(cfg.SyncDir); statErr == nil && info.IsDir() {
			if mkErr := os.MkdirAll(syncBase, 0o700); mkErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not prepare sync directory %s: %v\n", syncBase, mkErr)
			}
		}
		syncTier = NewSyncBackend(syncBase)
	}
	return New(syncTier, local), nil
}

// New assembles a Store from explicit tiers. syncTier may be nil.
func New(syncTier, local Backend) *Store {
	s := &Store{local: local, sync: syncTier}
	if syncTier != nil {
		s.backends = append(s.backends, syncTier)
	}
	s.backends = append(s.backends, local)
	return s
}

// get walks the tiers until one answers. A tier returning ErrNotFound answers
// authoritatively; only tier failures fall through.
func (s *Store) get(key string) ([]byte, error) {
	var lastErr error
	for _, b := range s.backends {
		data, err := b.Get(key)
		if err == nil || errors.Is(err, ErrNotFound) {
			return data, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// set walks the tiers until one accepts the write.
func (s *Store) set(key string, value []byte) error {
	var lastErr error
	for _, b := range s.backends {
		err := b.Set(key, value)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// Events loads the full event collection. A missing key is an empty list.
func (s *Store) Events() ([]model.Event, error) {
	data, err := s.get(KeyEvents)
	if errors.Is(err, ErrNotFound) {
		return []model.Event{}, nil
	}
	if err != nil {
		return nil, err
	}
	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("storage error decoding events: %w", err)
	}
	return events, nil
}

func (s *Store) writeEvents(events []model.Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error encoding events: %w", err)
	}
	return s.set(KeyEvents, data)
}

// Add appends a new event. The whole collection is read, extended, and
// written back; mutations are read-modify-write cycles with last-write-wins
// semantics, which is accepted for a single-user tool.
func (s *Store) Add(e model.Event) error {
	events, err := s.Events()
	if err != nil {
		return err
	}
	events = append(events, e)
	return s.writeEvents(events)
}

// Update replaces the name, date, and time of the event with the given id,
// keeping the id. An unknown id leaves the collection unchanged; that is not
// an error.
func (s *Store) Update(id int64, name, date string, tm *string) error {
	events, err := s.Events()
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].ID == id {
			events[i].Name = name
			events[i].Date = date
			events[i].Time = tm
		}
	}
	return s.writeEvents(events)
}

// Remove deletes the event with the given id. Removal is immediate and
// permanent; an unknown id is a no-op.
func (s *Store) Remove(id int64) error {
	events, err := s.Events()
	if err != nil {
		return err
	}
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.writeEvents(kept)
}
