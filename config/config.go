package config

import (
	"errors"
	"os"

	"go.uber.org/config"

	"github.com/chillfactor032/backbeatbot/clock"
	"github.com/chillfactor032/backbeatbot/livestatus"
	"github.com/chillfactor032/backbeatbot/logger"
)

// AppConfig holds all application configuration. The file on disk is
// JSON (which the YAML provider parses natively); the two top-level
// credentials are required, everything else is optional.
type AppConfig struct {
	DiscordToken   string `yaml:"discord_token"`
	ClockChannelID int64  `yaml:"clock_channel_id"`
	LiveChannelID  int64  `yaml:"live_channel_id"`
	AdminUserID    int64  `yaml:"admin_user_id"`

	Logger     logger.Config     `yaml:"logger"`
	LiveStatus livestatus.Config `yaml:"livestatus"`
	Clock      clock.Config      `yaml:"clock"`
}

// Load reads configuration from the specified files. Files are merged in
// order, with later files overriding earlier ones. Missing files are
// silently ignored; if none exist an error is returned. Unknown keys in
// the file are tolerated so a config carrying fields for other tools
// still loads.
func Load(files ...string) (*AppConfig, error) {
	opts := make([]config.YAMLOption, 0, len(files)+1)
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			opts = append(opts, config.File(f))
		}
	}

	if len(opts) == 0 {
		return nil, os.ErrNotExist
	}
	opts = append(opts, config.Permissive())

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults to the
// optional sections.
func LoadWithDefaults(files ...string) (*AppConfig, error) {
	cfg, err := Load(files...)
	if err != nil {
		return nil, err
	}

	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if len(cfg.Logger.OutputPaths) == 0 {
		cfg.Logger.OutputPaths = []string{"stdout"}
	}
	cfg.LiveStatus.Defaults()
	cfg.Clock.Defaults()

	return cfg, nil
}

// Validate checks the fields required before any connection attempt.
func (c *AppConfig) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("config missing required field: discord_token")
	}
	if c.ClockChannelID <= 0 {
		return errors.New("config missing required field: clock_channel_id")
	}
	return nil
}
