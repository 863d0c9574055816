package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvFeedInterval = "STEVEDORE_FEED_INTERVAL"
	EnvFeedCapacity = "STEVEDORE_FEED_CAPACITY"
)

// FeedConfig holds audit feed simulator settings.
type FeedConfig struct {
	Interval string `toml:"interval"`
	Capacity int    `toml:"capacity"`
}

// IntervalDuration returns Interval as a time.Duration.
func (c *FeedConfig) IntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.Interval)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *FeedConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *FeedConfig) Merge(overlay *FeedConfig) {
	if overlay.Interval != "" {
		c.Interval = overlay.Interval
	}
	if overlay.Capacity != 0 {
		c.Capacity = overlay.Capacity
	}
}

func (c *FeedConfig) loadDefaults() {
	if c.Interval == "" {
		c.Interval = "3500ms"
	}
	if c.Capacity == 0 {
		c.Capacity = 50
	}
}

func (c *FeedConfig) loadEnv() {
	if v := os.Getenv(EnvFeedInterval); v != "" {
		c.Interval = v
	}
	if v := os.Getenv(EnvFeedCapacity); v != "" {
		if capacity, err := strconv.Atoi(v); err == nil {
			c.Capacity = capacity
		}
	}
}

func (c *FeedConfig) validate() error {
	if _, err := time.ParseDuration(c.Interval); err != nil {
		return fmt.Errorf("invalid interval: %w", err)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("invalid capacity: %d", c.Capacity)
	}
	return nil
}
