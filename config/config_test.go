package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("APP_RECOMMENDATION_METHOD", "cf")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "cf", cfg.Recommendation.Method)
	assert.Equal(t, 20, cfg.Recommendation.Count)
	assert.Equal(t, 10*time.Second, cfg.Recommendation.Timeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "authentication", cfg.JWT.ClientTokenName)
	assert.Equal(t, uint32(5), cfg.Recommendation.BreakerFailures)
	assert.True(t, cfg.Browse.Async)
	assert.Equal(t, 2, cfg.Browse.Workers)
}
