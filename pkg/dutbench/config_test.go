package dutbench

import (
	"testing"

	"github.com/mcuadros/go-defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := Config{}
	defaults.SetDefaults(&cfg)
	return cfg
}

func TestConfigDefaultsAreValid(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "manual", cfg.Driver)
	assert.Equal(t, TestThroughput, cfg.Test)
	assert.Equal(t, 100, cfg.NumPkts)
	assert.Equal(t, 20, cfg.Duration)
	assert.Equal(t, 3, cfg.Trials)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty driver", func(c *Config) { c.Driver = "" }, "driver is required"},
		{"unknown test", func(c *Config) { c.Test = "flood" }, "unknown test"},
		{"zero numpkts", func(c *Config) { c.NumPkts = 0 }, "numpkts must be positive"},
		{"zero duration", func(c *Config) { c.Duration = 0 }, "duration must be positive"},
		{"zero trials", func(c *Config) { c.Trials = 0 }, "trials must be positive"},
		{"negative lossrate", func(c *Config) { c.LossRate = -0.1 }, "lossrate must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
