package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_MergePriority(t *testing.T) {
	// mergo.Merge keeps the first non-zero value, so earlier sources win
	// for fields they set; later sources only fill gaps.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "from-env.db"}}},
		&StructuredConfig{
			Storage: Storage{DB: DB{DSN: "from-flags.db"}},
			App:     App{SessionIssuer: "flag-issuer"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-issuer", cfg.App.SessionIssuer)
}

func TestConfigBuilder_EmptySources(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
	assert.Equal(t, DefaultAutosaveInterval, cfg.Workers.AutosaveInterval)
	assert.NotEmpty(t, cfg.App.SessionSignKey)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{SessionIssuer: "mine", SessionDuration: time.Hour},
		Storage: Storage{DB: DB{DSN: "mine.db"}},
	}
	cfg.applyDefaults()

	assert.Equal(t, "mine.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "mine", cfg.App.SessionIssuer)
	assert.Equal(t, time.Hour, cfg.App.SessionDuration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid after defaults", mutate: func(*StructuredConfig) {}, wantErr: nil},
		{
			name:    "empty dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero session duration",
			mutate:  func(c *StructuredConfig) { c.App.SessionDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero autosave interval",
			mutate:  func(c *StructuredConfig) { c.Workers.AutosaveInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
