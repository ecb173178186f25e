package session

import "github.com/matheus3301/baatchit/internal/config"

const DefaultSessionName = "main"

// Resolve determines the active session name using precedence:
// 1. flagOverride (--session flag)
// 2. BAATCHIT_DEFAULT_SESSION or config.toml default_session
// 3. "main"
//
// The config is only read without a flag, and only then can it fail.
func Resolve(flagOverride string) (string, error) {
	if flagOverride != "" {
		return flagOverride, nil
	}
	cfg, err := config.LoadOrDefault(ConfigPath())
	if err != nil {
		return "", err
	}
	if cfg.DefaultSession != "" {
		return cfg.DefaultSession, nil
	}
	return DefaultSessionName, nil
}
