// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-host", "127.0.0.1",
		"-p", "9090",
		"-d", "mongodb://localhost:27017",
		"-db-name", "flags_db",
		"-db-timeout", "3s",
		"-c", "/etc/movie-api/config.json",
		"-token-sign-key", "flag_secret",
		"-token-issuer", "flag_issuer",
		"-token-duration", "2h",
		"-bcrypt-cost", "11",
		"-request-timeout", "15s",
		"-cors", "http://a.example,http://b.example",
		"-static", "/srv/www",
		"-no-metrics",
		"-log-level", "warn",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
	assert.Equal(t, "flags_db", cfg.Storage.DB.Name)
	assert.Equal(t, 3*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, "/etc/movie-api/config.json", cfg.JSONFilePath)
	assert.Equal(t, "flag_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "flag_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/srv/www", cfg.Server.StaticDir)
	assert.True(t, cfg.Server.MetricsDisabled)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_RepeatedCors(t *testing.T) {
	cfg, err := ParseFlags([]string{"-cors", "http://a.example", "-cors", " http://b.example , "})
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown", "value"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-token-duration", "soon"})
	require.Error(t, err)
}
