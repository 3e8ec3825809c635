package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/chillfactor032/backbeatbot/clock"
	"github.com/chillfactor032/backbeatbot/logger"
	"github.com/chillfactor032/backbeatbot/timeutil"
)

var _ Discord = (*DefaultDiscord)(nil)

const (
	onlineChannelName  = "🟢 Mitch is live!"
	offlineChannelName = "🔴 Mitch isn't live"
	onlineMarker       = "is live!"
)

type DefaultDiscord struct {
	session        *discordgo.Session
	clock          clock.Clock
	clockChannelID int64
	liveChannelID  int64
	adminUserID    string
	interval       time.Duration
	logger         logger.Logger

	// editChannel is the rename call, split out so tests can observe
	// updater ticks without a gateway connection.
	editChannel func(channelID string, name string) error

	removeHandler func()
	stopUpdater   chan struct{}
	updaterDone   chan struct{}
}

type Params struct {
	Config Config
	Clock  clock.Clock
	Logger logger.Logger
}

func New(p Params) (*DefaultDiscord, error) {
	cfg := p.Config
	cfg.Defaults()

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	clk := p.Clock
	if clk == nil {
		clk = clock.System()
	}

	var admin string
	if cfg.AdminUserID > 0 {
		admin = strconv.FormatInt(cfg.AdminUserID, 10)
	}

	c := &DefaultDiscord{
		session:        session,
		clock:          clk,
		clockChannelID: cfg.ClockChannelID,
		liveChannelID:  cfg.LiveChannelID,
		adminUserID:    admin,
		interval:       cfg.UpdateInterval,
		logger:         log,
	}
	c.editChannel = func(channelID string, name string) error {
		_, err := session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name})
		return err
	}

	return c, nil
}

func (c *DefaultDiscord) Start(ctx context.Context) error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("open discord connection: %w", err)
	}

	if c.session.State != nil && c.session.State.User != nil {
		c.logger.InfoW("logged in",
			"user", c.session.State.User.Username,
			"id", c.session.State.User.ID)
	}

	c.removeHandler = c.session.AddHandler(c.handleMessage)
	c.stopUpdater = make(chan struct{})
	c.updaterDone = make(chan struct{})

	go c.runUpdater()

	return nil
}

func (c *DefaultDiscord) Stop() {
	if c.removeHandler != nil {
		c.removeHandler()
		c.removeHandler = nil
	}
	if c.stopUpdater != nil {
		close(c.stopUpdater)
		<-c.updaterDone
	}
	c.session.Close()
}

// runUpdater renames the clock channel once at startup, then at every
// aligned interval boundary until stopped.
func (c *DefaultDiscord) runUpdater() {
	defer close(c.updaterDone)

	c.updateClock()

	for {
		now := c.clock.Now()
		timer := time.NewTimer(timeutil.NextTickAt(now, c.interval).Sub(now))

		select {
		case <-c.stopUpdater:
			timer.Stop()
			return
		case <-timer.C:
			c.updateClock()
		}
	}
}

func (c *DefaultDiscord) updateClock() {
	name := timeutil.ChannelName(c.clock.Now())
	c.logger.InfoW("update clock channel", "channel", c.clockChannelID, "name", name)
	if err := c.SetChannelName(c.clockChannelID, name); err != nil {
		// Transient rename failures are retried on the next tick.
		c.logger.WarnW("clock channel rename failed", "channel", c.clockChannelID, "error", err)
	}
}

// SetChannelName renames a channel by its numeric id.
func (c *DefaultDiscord) SetChannelName(channelID int64, name string) error {
	if c.editChannel == nil {
		return errors.New("discord session is nil")
	}
	if channelID <= 0 {
		return errors.New("channel id is not set")
	}
	return c.editChannel(strconv.FormatInt(channelID, 10), name)
}

// ShowLiveChannel marks the live channel online and makes it visible to
// @everyone.
func (c *DefaultDiscord) ShowLiveChannel() error {
	return c.setLiveVisibility(onlineChannelName, false)
}

// HideLiveChannel marks the live channel offline and hides it from
// @everyone.
func (c *DefaultDiscord) HideLiveChannel() error {
	return c.setLiveVisibility(offlineChannelName, true)
}

func (c *DefaultDiscord) setLiveVisibility(name string, hidden bool) error {
	if c.liveChannelID <= 0 {
		return errors.New("live channel id is not set")
	}

	if err := c.SetChannelName(c.liveChannelID, name); err != nil {
		return fmt.Errorf("rename live channel: %w", err)
	}

	id := strconv.FormatInt(c.liveChannelID, 10)
	ch, err := c.session.Channel(id)
	if err != nil {
		return fmt.Errorf("fetch live channel: %w", err)
	}

	// The @everyone role id is always the guild id.
	var deny int64
	if hidden {
		deny = discordgo.PermissionViewChannel
	}
	if err := c.session.ChannelPermissionSet(id, ch.GuildID, discordgo.PermissionOverwriteTypeRole, 0, deny); err != nil {
		return fmt.Errorf("set live channel visibility: %w", err)
	}
	return nil
}

// InitialLiveStatus reports whether the live channel currently carries
// the online marker. Used to seed the live status poller so a restart
// doesn't re-announce an ongoing stream.
func (c *DefaultDiscord) InitialLiveStatus() bool {
	if c.liveChannelID <= 0 {
		return false
	}
	ch, err := c.session.Channel(strconv.FormatInt(c.liveChannelID, 10))
	if err != nil {
		c.logger.WarnW("fetch live channel for initial status", "error", err)
		return false
	}
	return strings.Contains(ch.Name, onlineMarker)
}

// handleMessage dispatches admin commands. Only DMs from the configured
// admin user are acted on; everything else is ignored.
func (c *DefaultDiscord) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID != "" {
		return
	}
	if c.adminUserID == "" || m.Author.ID != c.adminUserID {
		return
	}

	c.logger.InfoW("admin dm received", "from", m.Author.Username, "content", m.Content)

	var reply string
	switch strings.TrimSpace(m.Content) {
	case "!hide_live_channel":
		reply = "Hiding the live channel."
		if err := c.HideLiveChannel(); err != nil {
			c.logger.ErrorW("hide live channel", "error", err)
			reply = fmt.Sprintf("Error: %v", err)
		}
	case "!show_live_channel":
		reply = "Making the live channel visible."
		if err := c.ShowLiveChannel(); err != nil {
			c.logger.ErrorW("show live channel", "error", err)
			reply = fmt.Sprintf("Error: %v", err)
		}
	default:
		reply = "I'm not sure what you want."
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		c.logger.ErrorW("failed to send admin reply", "error", err)
	}
}
