package livestatus

import (
	"context"
	"errors"
	"testing"
)

type fakeClient struct {
	status *Status
	err    error
}

func (f *fakeClient) Fetch(ctx context.Context) (*Status, error) {
	return f.status, f.err
}

func TestPollOnce_TransitionToLive(t *testing.T) {
	client := &fakeClient{status: &Status{Live: 1}}

	var fired []bool
	poller := New(Params{
		Client:      client,
		InitialLive: false,
		OnChange:    func(live bool) { fired = append(fired, live) },
	})

	poller.pollOnce(context.Background())

	if len(fired) != 1 || fired[0] != true {
		t.Fatalf("expected one live=true notification, got %v", fired)
	}
}

func TestPollOnce_TransitionToOffline(t *testing.T) {
	client := &fakeClient{status: &Status{Live: 0}}

	var fired []bool
	poller := New(Params{
		Client:      client,
		InitialLive: true,
		OnChange:    func(live bool) { fired = append(fired, live) },
	})

	poller.pollOnce(context.Background())

	if len(fired) != 1 || fired[0] != false {
		t.Fatalf("expected one live=false notification, got %v", fired)
	}
}

func TestPollOnce_SteadyStateIsSilent(t *testing.T) {
	client := &fakeClient{status: &Status{Live: 1}}

	var fired []bool
	poller := New(Params{
		Client:      client,
		InitialLive: true,
		OnChange:    func(live bool) { fired = append(fired, live) },
	})

	poller.pollOnce(context.Background())
	poller.pollOnce(context.Background())

	if len(fired) != 0 {
		t.Fatalf("expected no notifications in steady state, got %v", fired)
	}
}

func TestPollOnce_FetchErrorKeepsState(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}

	var fired []bool
	poller := New(Params{
		Client:      client,
		InitialLive: true,
		OnChange:    func(live bool) { fired = append(fired, live) },
	})

	poller.pollOnce(context.Background())

	if len(fired) != 0 {
		t.Fatalf("expected no notification on fetch error, got %v", fired)
	}
	if !poller.live {
		t.Fatal("fetch error should not clear the last known state")
	}

	// Recovery after the error still detects the next real transition.
	client.err = nil
	client.status = &Status{Live: 0}
	poller.pollOnce(context.Background())

	if len(fired) != 1 || fired[0] != false {
		t.Fatalf("expected offline notification after recovery, got %v", fired)
	}
}

func TestStart_RequiresCallback(t *testing.T) {
	poller := New(Params{Client: &fakeClient{status: &Status{}}})

	if err := poller.Start(context.Background()); err == nil {
		t.Fatal("expected error when no change callback is set")
	}
}

func TestStartStop(t *testing.T) {
	client := &fakeClient{status: &Status{Live: 0}}

	poller := New(Params{
		Client:   client,
		OnChange: func(bool) {},
	})

	if err := poller.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	poller.Stop()
}
