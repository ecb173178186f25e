// Package kv is the typed key-value persistence adapter. Values are stored
// as JSON; an absent key is reported separately from an empty value.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Persisted keys.
const (
	KeyThemeMode    = "@theme_mode"
	KeyFavorites    = "@chat_favorites"
	KeyUserSettings = "@user_settings"
)

// Backend is the raw string store. *store.DB implements it.
type Backend interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	SetValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
	ClearValues(ctx context.Context) error
}

// Store encodes values as JSON on top of a Backend.
type Store struct {
	backend Backend
	logger  *zap.Logger
}

// New creates a Store.
func New(backend Backend, logger *zap.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// SetItem stores value under key as JSON.
func (s *Store) SetItem(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.SetValue(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// GetItem decodes the value under key into dst. It returns false with a nil
// error when the key is absent.
func (s *Store) GetItem(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.backend.GetValue(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := s.backend.DeleteValue(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Clear deletes every key.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.ClearValues(ctx)
}

// ThemeMode returns the persisted theme mode string. Read and decode errors
// are logged and reported as absent.
func (s *Store) ThemeMode(ctx context.Context) (string, bool) {
	var mode string
	ok, err := s.GetItem(ctx, KeyThemeMode, &mode)
	if err != nil {
		s.logger.Warn("theme mode unreadable, treating as absent", zap.Error(err))
		return "", false
	}
	return mode, ok
}

// Favorites returns the persisted favorite chat IDs. ok is false when
// nothing was stored or the stored value is unreadable.
func (s *Store) Favorites(ctx context.Context) (ids []string, ok bool) {
	ok, err := s.GetItem(ctx, KeyFavorites, &ids)
	if err != nil {
		s.logger.Warn("favorites unreadable, treating as absent", zap.Error(err))
		return []string{}, false
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, ok
}

// UserSettings decodes the persisted settings record into dst.
func (s *Store) UserSettings(ctx context.Context, dst any) bool {
	ok, err := s.GetItem(ctx, KeyUserSettings, dst)
	if err != nil {
		s.logger.Warn("user settings unreadable, using defaults", zap.Error(err))
		return false
	}
	return ok
}
