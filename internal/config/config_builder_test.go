// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requiredArgs are the flags needed for a config to pass validation.
var requiredArgs = []string{"-d", "mongodb://localhost:27017", "-token-sign-key", "secret"}

// ── defaults ──

func TestGetStructuredConfig_Defaults(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := GetStructuredConfig(requiredArgs)
	require.NoError(t, err)

	assert.Equal(t, defaultHost, cfg.Server.Host)
	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, defaultStaticDir, cfg.Server.StaticDir)
	assert.False(t, cfg.Server.MetricsDisabled)

	assert.Equal(t, defaultDBName, cfg.Storage.DB.Name)
	assert.Equal(t, defaultConnectTimeout, cfg.Storage.DB.ConnectTimeout)

	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultBcryptCost, cfg.App.PasswordHashCost)

	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

// ── precedence ──

func TestGetStructuredConfig_EnvOverridesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PORT":                 "9000",
		"CORS_ALLOWED_ORIGINS": "http://env.example",
		"METRICS_DISABLED":     "true",
	})

	cfg, err := GetStructuredConfig(requiredArgs)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://env.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Server.MetricsDisabled)
	assert.Equal(t, defaultHost, cfg.Server.Host)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PORT":       "9000",
		"JWT_SECRET": "env_secret",
	})

	cfg, err := GetStructuredConfig(append([]string{"-p", "9100"}, requiredArgs...))
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	setEnvVars(t, map[string]string{})
	path := writeTempFile(t, `{"server": {"port": "9200"}, "storage": {"db": {"name": "json_db"}}}`)

	cfg, err := GetStructuredConfig(append([]string{"-p", "9100", "-c", path}, requiredArgs...))
	require.NoError(t, err)

	assert.Equal(t, "9200", cfg.Server.Port)
	assert.Equal(t, "json_db", cfg.Storage.DB.Name)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
}

func TestGetStructuredConfig_JSONPathFromEnv(t *testing.T) {
	path := writeTempFile(t, `{"log_level": "info"}`)
	setEnvVars(t, map[string]string{"CONFIG": path})

	cfg, err := GetStructuredConfig(requiredArgs)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

// ── failures ──

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	setEnvVars(t, map[string]string{})

	_, err := GetStructuredConfig(append([]string{"-c", "/nonexistent/config.json"}, requiredArgs...))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	setEnvVars(t, map[string]string{})

	_, err := GetStructuredConfig([]string{"-nope"})
	require.Error(t, err)
}

func TestGetStructuredConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "missing connection uri",
			args:    []string{"-token-sign-key", "secret"},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing token sign key",
			args:    []string{"-d", "mongodb://localhost:27017"},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			args:    append([]string{"-bcrypt-cost", "40"}, requiredArgs...),
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too low",
			args:    append([]string{"-bcrypt-cost", "2"}, requiredArgs...),
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "non numeric port",
			args:    append([]string{"-p", "http"}, requiredArgs...),
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "port out of range",
			args:    append([]string{"-p", "70000"}, requiredArgs...),
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{})

			cfg, err := GetStructuredConfig(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate_NegativeTokenDuration(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "k", TokenDuration: -time.Hour, PasswordHashCost: defaultBcryptCost},
		Storage: Storage{DB: DB{URI: "mongodb://x", Name: "db"}},
		Server:  Server{Port: "8080"},
	}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
