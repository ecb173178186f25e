// Package settings holds the user preferences record.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matheus3301/baatchit/internal/bus"
	"github.com/matheus3301/baatchit/internal/kv"
	"go.uber.org/zap"
)

// FontSize is the chat text size.
type FontSize string

const (
	Small  FontSize = "small"
	Medium FontSize = "medium"
	Large  FontSize = "large"
)

var ErrInvalidFontSize = errors.New("invalid font size")

// ParseFontSize accepts small, medium or large.
func ParseFontSize(s string) (FontSize, error) {
	switch FontSize(s) {
	case Small, Medium, Large:
		return FontSize(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFontSize, s)
}

// Settings is persisted as one JSON record under kv.KeyUserSettings.
type Settings struct {
	NotificationsEnabled bool     `json:"notificationsEnabled"`
	SoundEnabled         bool     `json:"soundEnabled"`
	Language             string   `json:"language"`
	FontSize             FontSize `json:"fontSize"`
	ChatBackgroundColor  string   `json:"chatBackgroundColor"`
}

// Defaults returns the factory settings.
func Defaults() Settings {
	return Settings{
		NotificationsEnabled: true,
		SoundEnabled:         true,
		Language:             "en",
		FontSize:             Medium,
		ChatBackgroundColor:  "#FFFFFF",
	}
}

// Patch is a partial update. Nil fields are left alone.
type Patch struct {
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
	SoundEnabled         *bool   `json:"soundEnabled,omitempty"`
	Language             *string `json:"language,omitempty"`
	FontSize             *string `json:"fontSize,omitempty"`
	ChatBackgroundColor  *string `json:"chatBackgroundColor,omitempty"`
}

// Source reads the persisted record. *kv.Store implements it.
type Source interface {
	UserSettings(ctx context.Context, dst any) bool
}

// Store owns the current settings.
type Store struct {
	mu       sync.RWMutex
	settings Settings
	persist  kv.Persister
	bus      *bus.Bus
	logger   *zap.Logger
}

// New returns a Store holding the defaults.
func New(p kv.Persister, b *bus.Bus, logger *zap.Logger) *Store {
	return &Store{settings: Defaults(), persist: p, bus: b, logger: logger}
}

// Load replaces the settings with the persisted record. A missing or
// unreadable record, or one with an unknown font size, yields the defaults.
// Fields absent from the record keep their default values.
func (s *Store) Load(ctx context.Context, src Source) Settings {
	loaded := Defaults()
	if !src.UserSettings(ctx, &loaded) {
		loaded = Defaults()
	} else if _, err := ParseFontSize(string(loaded.FontSize)); err != nil {
		s.logger.Warn("persisted settings invalid, using defaults", zap.Error(err))
		loaded = Defaults()
	}

	s.mu.Lock()
	s.settings = loaded
	s.mu.Unlock()
	s.bus.Emit(bus.KindSettingsChanged, loaded)
	return loaded
}

// Current returns the settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update merges p into the settings and persists the result. An invalid
// font size rejects the whole patch.
func (s *Store) Update(p Patch) (Settings, error) {
	var size FontSize
	if p.FontSize != nil {
		var err error
		if size, err = ParseFontSize(*p.FontSize); err != nil {
			return s.Current(), err
		}
	}

	s.mu.Lock()
	next := s.settings
	if p.NotificationsEnabled != nil {
		next.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.SoundEnabled != nil {
		next.SoundEnabled = *p.SoundEnabled
	}
	if p.Language != nil {
		next.Language = *p.Language
	}
	if p.FontSize != nil {
		next.FontSize = size
	}
	if p.ChatBackgroundColor != nil {
		next.ChatBackgroundColor = *p.ChatBackgroundColor
	}
	s.settings = next
	s.write(next)
	s.mu.Unlock()

	s.bus.Emit(bus.KindSettingsChanged, next)
	return next, nil
}

// Reset restores the defaults and persists them.
func (s *Store) Reset() Settings {
	d := Defaults()
	s.mu.Lock()
	s.settings = d
	s.write(d)
	s.mu.Unlock()

	s.bus.Emit(bus.KindSettingsChanged, d)
	return d
}

// Save persists the current settings. The channel receives the write result.
func (s *Store) Save() <-chan error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.write(s.settings)
}

func (s *Store) write(st Settings) <-chan error {
	if s.persist == nil {
		ch := make(chan error, 1)
		ch <- nil
		return ch
	}
	return s.persist.Put(kv.KeyUserSettings, st)
}
