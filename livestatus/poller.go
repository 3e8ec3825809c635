package livestatus

import (
	"context"
	"errors"
	"net/http"
	"time"
)

var _ Poller = (*DefaultPoller)(nil)

// statusClient lets tests substitute the HTTP client.
type statusClient interface {
	Fetch(ctx context.Context) (*Status, error)
}

// DefaultPoller polls the status endpoint and fires OnChange when the
// stream transitions between live and offline. Steady state is silent,
// so the Discord channel is only touched on actual transitions.
type DefaultPoller struct {
	client   statusClient
	interval time.Duration
	live     bool
	onChange NotifyFunc
	logger   Logger
	stop     chan struct{}
	done     chan struct{}
}

// Params holds configuration for creating a new live status Poller.
type Params struct {
	Config     Config
	Client     statusClient
	HTTPClient *http.Client

	// InitialLive seeds the change detector, typically from the current
	// live channel name so a restart doesn't re-announce an ongoing stream.
	InitialLive bool
	OnChange    NotifyFunc
	Logger      Logger
}

// New creates a new live status poller.
func New(p Params) *DefaultPoller {
	p.Config.Defaults()

	client := p.Client
	if client == nil {
		httpClient := p.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: 30 * time.Second}
		}
		client = NewClient(p.Config.URL, httpClient)
	}

	return &DefaultPoller{
		client:   client,
		interval: p.Config.PollInterval,
		live:     p.InitialLive,
		onChange: p.OnChange,
		logger:   p.Logger,
	}
}

// Start begins the polling loop.
func (p *DefaultPoller) Start(ctx context.Context) error {
	if p.onChange == nil {
		return errors.New("livestatus: change callback is required")
	}

	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go p.run(ctx)
	return nil
}

// Stop stops the polling loop.
func (p *DefaultPoller) Stop() {
	if p.stop != nil {
		close(p.stop)
		<-p.done
	}
}

func (p *DefaultPoller) run(ctx context.Context) {
	defer close(p.done)

	p.pollOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce(ctx)
		}
	}
}

func (p *DefaultPoller) pollOnce(ctx context.Context) {
	status, err := p.client.Fetch(ctx)
	if err != nil {
		// Transient fetch failures keep the last known state; the next
		// tick retries.
		if p.logger != nil {
			p.logger.DebugW("live status fetch failed", "error", err)
		}
		return
	}

	live := status.IsLive()
	if live == p.live {
		return
	}

	p.live = live
	if p.logger != nil {
		p.logger.InfoW("live status changed", "live", live)
	}
	p.onChange(live)
}
