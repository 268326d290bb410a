package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APPLICANTS_BASE_URL", "https://api.example.com/api")
	t.Setenv("API_BASE_URL", "https://rest.example.com/api")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.RecruitmentOpen)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.CORSAllowOrigins)
}

func TestLoad_MissingBaseURLs(t *testing.T) {
	t.Setenv("APPLICANTS_BASE_URL", "")
	t.Setenv("API_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APPLICANTS_BASE_URL")

	t.Setenv("APPLICANTS_BASE_URL", "https://api.example.com/api")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RECRUITMENT_OPEN", "false")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://traction.bracurobu.com, https://bracurobu.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.RecruitmentOpen)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"https://traction.bracurobu.com", "https://bracurobu.com"}, cfg.CORSAllowOrigins)
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("RECRUITMENT_OPEN", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.RecruitmentOpen)
}
