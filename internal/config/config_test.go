package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"VA_CREATOR_BASE_URL", "VA_CREATOR_TIMEOUT", "VA_CREATOR_LOG_LEVEL", "VA_CREATOR_DRY_RUN"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:2001", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.DryRun)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("VA_CREATOR_BASE_URL", "http://10.0.0.5:2001")
	t.Setenv("VA_CREATOR_TIMEOUT", "5s")
	t.Setenv("VA_CREATOR_LOG_LEVEL", "debug")
	t.Setenv("VA_CREATOR_DRY_RUN", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:2001", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DryRun)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unparseable": "soon",
		"negative":    "-1s",
		"zero":        "0s",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("VA_CREATOR_TIMEOUT", value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
