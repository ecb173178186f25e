// Package profile holds the user's editable profile. It is not persisted.
package profile

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/matheus3301/baatchit/internal/bus"
	"go.uber.org/zap"
)

// Profile is the user's public card.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Bio    string `json:"bio"`
}

// Default returns the profile shown before any edit.
func Default() Profile {
	return Profile{
		Name:   "Afaq Ul Islam",
		Email:  "afaq@example.com",
		Phone:  "+92 300 1234567",
		Status: "Available",
		Bio:    "Hey there! I am using Baatchit.",
	}
}

// ValidationError maps field names to messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate returns a *ValidationError when a required field is blank or
// the email is malformed, nil otherwise.
func Validate(p Profile) error {
	fields := make(map[string]string)
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "Name is required"
	}
	switch email := strings.TrimSpace(p.Email); {
	case email == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		fields["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(p.Phone) == "" {
		fields["phone"] = "Phone number is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Store holds the current profile in memory.
type Store struct {
	mu      sync.RWMutex
	profile Profile
	bus     *bus.Bus
	logger  *zap.Logger
}

func New(b *bus.Bus, logger *zap.Logger) *Store {
	return &Store{profile: Default(), bus: b, logger: logger}
}

// Get returns the profile.
func (s *Store) Get() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Update replaces the profile if it validates. On error the previous
// profile is kept.
func (s *Store) Update(p Profile) (Profile, error) {
	if err := Validate(p); err != nil {
		return s.Get(), err
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()

	s.logger.Info("profile updated", zap.String("name", p.Name))
	s.bus.Emit(bus.KindProfileChanged, p)
	return p, nil
}
