package conf

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("LOTTERY_PLAN", "plan.yaml")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, ":2112", cfg.PrometheusBind)
	assert.Equal(t, "plan.yaml", cfg.PlanPath)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 100, cfg.Draws)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Debug)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("LOTTERY_PLAN", "/etc/lottery.json")
	t.Setenv("LOTTERY_SEED", "42")
	t.Setenv("LOTTERY_WORKERS", "1")
	t.Setenv("LOTTERY_DEBUG", "true")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Debug)
}

func TestParseEnvRequiresPlan(t *testing.T) {
	t.Setenv("LOTTERY_PLAN", "")
	os.Unsetenv("LOTTERY_PLAN")

	_, err := ParseEnv()
	assert.Error(t, err)
}
