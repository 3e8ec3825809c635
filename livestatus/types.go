package livestatus

import "context"

// Poller defines the interface for polling the stream status endpoint.
type Poller interface {
	Start(ctx context.Context) error
	Stop()
}

// Status is the payload served by the live status endpoint.
type Status struct {
	Live int `json:"live"`
}

// IsLive reports whether the payload marks the stream online.
func (s Status) IsLive() bool { return s.Live == 1 }

// NotifyFunc is called when the live state changes.
type NotifyFunc func(live bool)

// Logger is a minimal logging interface satisfied by logger.Logger.
type Logger interface {
	DebugW(msg string, keysAndValues ...any)
	InfoW(msg string, keysAndValues ...any)
}
