package discord

import "context"

// Discord defines the interface for the Discord client.
type Discord interface {
	Start(ctx context.Context) error
	Stop()
	SetChannelName(channelID int64, name string) error
	ShowLiveChannel() error
	HideLiveChannel() error
	InitialLiveStatus() bool
}
