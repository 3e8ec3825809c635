package livestatus

import "time"

// Config holds live status poller configuration.
type Config struct {
	URL          string        `yaml:"url"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Defaults applies default values to the config.
func (c *Config) Defaults() {
	if c.URL == "" {
		c.URL = "https://backbeatbot.com/live_status.php"
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Minute
	}
}
