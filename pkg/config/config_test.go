package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	// no config.yaml in the test working directory: defaults apply
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "indonesia_area.db", cfg.DBPath)
	assert.InDelta(t, 0.0002, cfg.Tolerance, 1e-12)
	assert.Equal(t, 1000, cfg.BatchSize)
}
