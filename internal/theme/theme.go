// Package theme holds the light/dark display mode.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/kv"
	"go.uber.org/zap"
)

// Mode is the display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode accepts exactly "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// State is a snapshot of the theme.
type State struct {
	Mode            Mode `json:"mode"`
	IsSystemDerived bool `json:"isSystemDerived"`
}

// Source reads the persisted mode. *kv.Store implements it.
type Source interface {
	ThemeMode(ctx context.Context) (string, bool)
}

// Store owns the theme state. Every explicit mode change issues one write.
type Store struct {
	mu      sync.RWMutex
	state   State
	persist kv.Persister
	bus     *bus.Bus
	logger  *zap.Logger
}

// New returns a Store in light, system-derived mode.
func New(p kv.Persister, b *bus.Bus, logger *zap.Logger) *Store {
	return &Store{
		state:   State{Mode: Light, IsSystemDerived: true},
		persist: p,
		bus:     b,
		logger:  logger,
	}
}

// Current returns the current state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Toggle flips the mode.
func (s *Store) Toggle() State {
	s.mu.Lock()
	next := Dark
	if s.state.Mode == Dark {
		next = Light
	}
	st := s.apply(next)
	s.save(st.Mode)
	s.mu.Unlock()
	return st
}

// Set applies mode.
func (s *Store) Set(mode Mode) (State, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return s.Current(), err
	}
	s.mu.Lock()
	st := s.apply(mode)
	s.save(st.Mode)
	s.mu.Unlock()
	return st, nil
}

// SetSystemDerived changes only the flag. Nothing is persisted.
func (s *Store) SetSystemDerived(v bool) State {
	s.mu.Lock()
	s.state.IsSystemDerived = v
	st := s.state
	s.mu.Unlock()

	s.bus.Emit(bus.KindThemeChanged, st)
	return st
}

// LoadOnStartup applies the persisted mode if one is present and valid.
// Otherwise the state stays light and system-derived.
func (s *Store) LoadOnStartup(ctx context.Context, src Source) State {
	raw, ok := src.ThemeMode(ctx)
	if !ok {
		s.logger.Info("no persisted theme, using light")
		return s.Current()
	}
	mode, err := ParseMode(raw)
	if err != nil {
		s.logger.Warn("ignoring persisted theme", zap.String("value", raw))
		return s.Current()
	}

	s.mu.Lock()
	st := s.apply(mode)
	s.mu.Unlock()
	s.logger.Info("theme restored", zap.String("mode", string(mode)))
	return st
}

// apply must be called with s.mu held.
func (s *Store) apply(mode Mode) State {
	s.state = State{Mode: mode, IsSystemDerived: false}
	s.bus.Emit(bus.KindThemeChanged, s.state)
	return s.state
}

// save must be called with s.mu held so writes queue in mutation order.
func (s *Store) save(mode Mode) {
	if s.persist == nil {
		return
	}
	s.persist.Put(kv.KeyThemeMode, string(mode))
}
