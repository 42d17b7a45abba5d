package config

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestDefaultConfig_Timing(t *testing.T) {
	c := DefaultConfig()
	if got := c.SpawnInterval(); got != 0.625 {
		t.Fatalf("spawn interval: want 0.625, got %g", got)
	}
	if got := c.FlameExpiry(); math.Abs(got-2.8) > 1e-9 {
		t.Fatalf("flame expiry: want 2.8, got %g", got)
	}
	if c.StarCount != 50 {
		t.Fatalf("star count: want 50, got %d", c.StarCount)
	}
}

func TestValidate_RejectsBadFields(t *testing.T) {
	cases := map[string]func(*Config){
		"width":    func(c *Config) { c.Width = 0 },
		"tps":      func(c *Config) { c.TPS = -1 },
		"stars":    func(c *Config) { c.StarCount = -5 },
		"lifetime": func(c *Config) { c.FlameLifetime = 0 },
		"grow":     func(c *Config) { c.FlameGrowDuration = -0.1 },
		"peak":     func(c *Config) { c.FlamePeakSize = 0 },
		"drift":    func(c *Config) { c.FlameDriftX = -1 },
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c)
		err := c.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}
