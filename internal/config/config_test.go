package config

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ECSIM_FPS", "ECSIM_LOG_LEVEL", "ECSIM_LOG_FILE", "ECSIM_MAX_TICKS", "ECSIM_DRIFTERS"} {
		t.Setenv(k, "") // restored after the test
		require.NoError(t, os.Unsetenv(k))
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{FPS: 60, LogLevel: "info", Drifters: 3}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ECSIM_FPS", "30")
	t.Setenv("ECSIM_LOG_LEVEL", "debug")
	t.Setenv("ECSIM_LOG_FILE", "/tmp/ecsim.log")
	t.Setenv("ECSIM_MAX_TICKS", "120")
	t.Setenv("ECSIM_DRIFTERS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{FPS: 30, LogLevel: "debug", LogFile: "/tmp/ecsim.log", MaxTicks: 120}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestParseLeavesValidationToCaller(t *testing.T) {
	t.Setenv("ECSIM_FPS", "0")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.FPS)
	assert.Error(t, cfg.Validate())

	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformedNumber(t *testing.T) {
	t.Setenv("ECSIM_FPS", "fast")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{FPS: 60, LogLevel: "info", Drifters: 3}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"negative drifters", func(c *Config) { c.Drifters = -1 }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
	}
	require.NoError(t, valid.Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
