package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praashon/devtrackr/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TIMEZONE", "WEEK_STARTS_ON", "USER_ID", "EVENT_SOURCE", "API_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, domain.WeekStartMonday, cfg.WeekStartsOn)
	assert.Equal(t, "dev-user-1", cfg.UserID)
	assert.Equal(t, "mock", cfg.EventSource)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIMEZONE", "Asia/Tokyo")
	t.Setenv("WEEK_STARTS_ON", "sunday")
	t.Setenv("USER_ID", "alex")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, domain.WeekStartSunday, cfg.WeekStartsOn)
	assert.Equal(t, "alex", cfg.UserID)
}

func TestValidateRejectsBadTimezone(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus", WeekStartsOn: domain.WeekStartMonday, EventSource: "mock"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIMEZONE")
}

func TestValidateRejectsBadWeekStart(t *testing.T) {
	cfg := &Config{Timezone: "UTC", WeekStartsOn: "saturday", EventSource: "mock"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEEK_STARTS_ON")
}

func TestValidateRejectsBadEventSource(t *testing.T) {
	cfg := &Config{Timezone: "UTC", WeekStartsOn: domain.WeekStartMonday, EventSource: "gitlab"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVENT_SOURCE")
}

func TestValidateGitHubSourceNeedsToken(t *testing.T) {
	cfg := &Config{Timezone: "UTC", WeekStartsOn: domain.WeekStartMonday, EventSource: "github"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")

	cfg.GitHubToken = "ghp_test"
	assert.NoError(t, cfg.Validate())
}
