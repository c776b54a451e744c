package vgconfig_test

import (
	"testing"

	"github.com/vgrepeater/vgrepeater/internal/vgconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithNoConfigFile(t *testing.T) {
	cfg, err := vgconfig.Load("/nonexistent/path/vgrepeater.yaml")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Output.Dir)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("VGREPEATER_LOG_LEVEL", "debug")

	cfg, err := vgconfig.Load("/nonexistent/path/vgrepeater.yaml")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
}
