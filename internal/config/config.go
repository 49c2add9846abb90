package config

import "time"

// StructuredConfig is the top-level configuration container for the
// go-shop-front application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session token
	// signing secret and its lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the durable blob store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the session
// token lifecycle.
type App struct {
	// SessionSignKey is the secret the session-token signing key is
	// derived from. Must be kept confidential in a real deployment.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every persisted
	// session token and validated on hydration.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration specifies how long a persisted session remains
	// valid after login (e.g. "720h").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`
}

// Storage groups the configuration for the durable store backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (":memory:" is allowed for throwaway
	// sessions that do not survive a restart).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AutosaveInterval defines how often the autosave worker flushes
	// in-memory state to the durable store (e.g. "30s").
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

// Defaults applied by GetConfig when a field is left unset by all sources.
const (
	DefaultDSN              = "shop-front.db"
	DefaultSessionIssuer    = "go-shop-front"
	DefaultSessionDuration  = 720 * time.Hour
	DefaultAutosaveInterval = 30 * time.Second

	// defaultSessionSignKey is a development fallback only; any real
	// deployment must set APP_SESSION_SIGN_KEY.
	defaultSessionSignKey = "shop-front-dev-session-key"
)

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields receive the package defaults. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.App.SessionSignKey == "" {
		cfg.App.SessionSignKey = defaultSessionSignKey
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.Workers.AutosaveInterval == 0 {
		cfg.Workers.AutosaveInterval = DefaultAutosaveInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.SessionIssuer == "" || cfg.App.SessionDuration <= 0 || cfg.App.SessionSignKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.Workers.AutosaveInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
