package discord

import "time"

// Config holds Discord-specific configuration. ClockChannelID is the
// voice channel whose name displays the time; LiveChannelID and
// AdminUserID are optional and gate the live-channel features.
type Config struct {
	Token          string
	ClockChannelID int64
	LiveChannelID  int64
	AdminUserID    int64
	UpdateInterval time.Duration
}

// Defaults applies default values to the config.
func (c *Config) Defaults() {
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = 10 * time.Minute
	}
}
