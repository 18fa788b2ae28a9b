// Package theme persists the user's display preference across runs
package theme

import (
	"context"

	"tasker/internal/logging"
	"tasker/internal/storage"
)

// Mode is a display color preference
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// IsValid reports whether the mode is one of the recognized values
func (m Mode) IsValid() bool {
	return m == ModeLight || m == ModeDark
}

// Store persists the theme preference. Unknown persisted values fall back
// to light mode.
type Store struct {
	kv      storage.Store
	current Mode
}

// NewStore creates a theme store and restores the persisted preference
func NewStore(ctx context.Context, kv storage.Store) (*Store, error) {
	s := &Store{
		kv:      kv,
		current: ModeLight,
	}

	raw, ok, err := kv.Get(ctx, storage.KeyTheme)
	if err != nil {
		return nil, err
	}
	if ok {
		mode := Mode(raw)
		if mode.IsValid() {
			s.current = mode
		} else {
			logging.Debugf("theme: ignoring unrecognized persisted value %q\n", raw)
		}
	}
	return s, nil
}

// Current returns the active theme mode
func (s *Store) Current() Mode {
	return s.current
}

// Set switches to the given mode and persists it. Unrecognized modes are
// ignored.
func (s *Store) Set(ctx context.Context, mode Mode) error {
	if !mode.IsValid() || mode == s.current {
		return nil
	}
	if err := s.kv.Set(ctx, storage.KeyTheme, string(mode)); err != nil {
		return err
	}
	s.current = mode
	return nil
}

// Toggle flips between light and dark and returns the new mode
func (s *Store) Toggle(ctx context.Context) (Mode, error) {
	next := ModeDark
	if s.current == ModeDark {
		next = ModeLight
	}
	if err := s.kv.Set(ctx, storage.KeyTheme, string(next)); err != nil {
		return s.current, err
	}
	s.current = next
	return next, nil
}
