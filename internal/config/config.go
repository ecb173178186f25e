package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const DefaultAPIBaseURL = "https://jsonplaceholder.typicode.com"

// Config represents the global ~/.baatchit/config.toml.
type Config struct {
	DefaultSession string        `toml:"default_session"`
	API            API           `toml:"api"`
	Simulation     Simulation    `toml:"simulation"`
	Notifications  Notifications `toml:"notifications"`
	Log            Log           `toml:"log"`
}

// API configures the remote posts feed.
type API struct {
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// Simulation holds the delays of the simulated message exchange.
type Simulation struct {
	SentAfter      Duration `toml:"sent_after"`
	DeliveredAfter Duration `toml:"delivered_after"`
	ReplyAfter     Duration `toml:"reply_after"`
	TypingLead     Duration `toml:"typing_lead"`
}

type Notifications struct {
	Enabled bool `toml:"enabled"`
}

type Log struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration that reads and writes as "1s", "250ms", ...
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		API: API{
			BaseURL: DefaultAPIBaseURL,
			Timeout: Duration{10 * time.Second},
		},
		Simulation: Simulation{
			SentAfter:      Duration{1 * time.Second},
			DeliveredAfter: Duration{2 * time.Second},
			ReplyAfter:     Duration{5 * time.Second},
			TypingLead:     Duration{2 * time.Second},
		},
		Notifications: Notifications{Enabled: true},
		Log:           Log{Level: "info"},
	}
}

// Load reads config from the given path on top of Default. Returns error if file missing.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load with a fallback to Default when the file does not
// exist, followed by environment overrides. A .env file next to the config
// is read first if present. A config that exists but cannot be read or
// parsed is an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = Default()
	case err != nil:
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))
	ApplyEnv(cfg)
	return cfg, nil
}

// ApplyEnv overrides config values from BAATCHIT_* environment variables.
// Unparseable values are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("BAATCHIT_DEFAULT_SESSION"); v != "" {
		cfg.DefaultSession = v
	}
	if v := os.Getenv("BAATCHIT_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v, ok := envDuration("BAATCHIT_API_TIMEOUT"); ok {
		cfg.API.Timeout = v
	}
	if v, ok := envDuration("BAATCHIT_REPLY_AFTER"); ok {
		cfg.Simulation.ReplyAfter = v
	}
	if v := os.Getenv("BAATCHIT_NOTIFICATIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Notifications.Enabled = b
		}
	}
	if v := os.Getenv("BAATCHIT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func envDuration(key string) (Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return Duration{}, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return Duration{}, false
	}
	return Duration{d}, true
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
