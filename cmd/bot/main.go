package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/chillfactor032/backbeatbot/clock"
	"github.com/chillfactor032/backbeatbot/config"
	"github.com/chillfactor032/backbeatbot/discord"
	"github.com/chillfactor032/backbeatbot/livestatus"
	"github.com/chillfactor032/backbeatbot/logger"
)

func main() {
	params, err := build(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err = run(params); err != nil {
		log.Fatal(err)
	}
}

type cliFlags struct {
	configPath string
	logLevel   string
}

func parseFlags(args []string) (cliFlags, error) {
	f := cliFlags{}
	fs := flag.NewFlagSet("backbeatbot", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "c", "config.json", "path to the JSON config file")
	fs.StringVar(&f.configPath, "config", "config.json", "path to the JSON config file")
	fs.StringVar(&f.logLevel, "L", "INFO", "log level (INFO, WARNING, ERROR, DEBUG, CRITICAL)")
	fs.StringVar(&f.logLevel, "loglevel", "INFO", "log level (INFO, WARNING, ERROR, DEBUG, CRITICAL)")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	return f, nil
}

func build(args []string) (runParams, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return runParams{}, err
	}

	// Best effort; credentials normally live in the config file.
	_ = godotenv.Load()

	cfg, err := config.LoadWithDefaults(flags.configPath)
	if err != nil {
		return runParams{}, fmt.Errorf("load config %s: %w", flags.configPath, err)
	}

	if token := strings.TrimSpace(os.Getenv("DISCORD_TOKEN")); token != "" {
		cfg.DiscordToken = token
	}
	if err := cfg.Validate(); err != nil {
		return runParams{}, err
	}

	cfg.Logger.Level = logger.ParseLevel(flags.logLevel)
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return runParams{}, fmt.Errorf("initialize logger: %w", err)
	}

	var clk clock.Clock = clock.System()
	var ntpClock *clock.NTPClock
	if cfg.Clock.NTPServer != "" {
		ntpClock = clock.NewNTP(cfg.Clock, appLogger)
		clk = ntpClock
	}

	discordClient, err := discord.New(discord.Params{
		Config: discord.Config{
			Token:          cfg.DiscordToken,
			ClockChannelID: cfg.ClockChannelID,
			LiveChannelID:  cfg.LiveChannelID,
			AdminUserID:    cfg.AdminUserID,
		},
		Clock:  clk,
		Logger: appLogger,
	})
	if err != nil {
		return runParams{}, fmt.Errorf("create discord client: %w", err)
	}

	return runParams{
		Config:        cfg,
		Logger:        appLogger,
		NTPClock:      ntpClock,
		DiscordClient: discordClient,
	}, nil
}

type runParams struct {
	Config        *config.AppConfig
	Logger        logger.Logger
	NTPClock      *clock.NTPClock
	DiscordClient discord.Discord
}

// run starts all components and runs the application until shutdown.
func run(p runParams) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer p.Logger.Sync()

	if p.NTPClock != nil {
		if err := p.NTPClock.Start(ctx); err != nil {
			return fmt.Errorf("start ntp clock: %w", err)
		}
		defer p.NTPClock.Stop()
	}

	if err := p.DiscordClient.Start(ctx); err != nil {
		return fmt.Errorf("start discord client: %w", err)
	}

	var poller livestatus.Poller
	if p.Config.LiveChannelID > 0 {
		poller = livestatus.New(livestatus.Params{
			Config:      p.Config.LiveStatus,
			InitialLive: p.DiscordClient.InitialLiveStatus(),
			OnChange: func(live bool) {
				if live {
					if err := p.DiscordClient.ShowLiveChannel(); err != nil {
						p.Logger.ErrorW("show live channel", "error", err)
					}
					return
				}
				if err := p.DiscordClient.HideLiveChannel(); err != nil {
					p.Logger.ErrorW("hide live channel", "error", err)
				}
			},
			Logger: p.Logger,
		})
		if err := poller.Start(ctx); err != nil {
			return fmt.Errorf("start live status poller: %w", err)
		}
	}

	p.Logger.InfoW("bot ready", "clock_channel", p.Config.ClockChannelID)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	p.Logger.InfoW("shutdown signal received")

	if poller != nil {
		poller.Stop()
	}
	p.DiscordClient.Stop()
	cancel()

	p.Logger.InfoW("shutdown complete")
	return nil
}
