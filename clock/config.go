package clock

import "time"

// Config holds NTP clock configuration. An empty NTPServer leaves NTP
// correction disabled and the bot on the system clock.
type Config struct {
	NTPServer    string        `yaml:"ntp_server"`
	SyncInterval time.Duration `yaml:"sync_interval"`
	SyncTimeout  time.Duration `yaml:"sync_timeout"`
}

// Defaults applies default values to the config.
func (c *Config) Defaults() {
	if c.SyncInterval <= 0 {
		c.SyncInterval = 30 * time.Minute
	}
	if c.SyncTimeout <= 0 {
		c.SyncTimeout = 5 * time.Second
	}
}
