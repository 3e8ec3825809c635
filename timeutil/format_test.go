package timeutil

import (
	"testing"
	"time"
)

func TestChannelName(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "afternoon",
			now:  time.Date(2026, 8, 29, 15, 40, 0, 0, time.UTC),
			want: "(Now: Sat 3:40pm UTC)",
		},
		{
			name: "morning_strips_leading_zero",
			now:  time.Date(2026, 8, 31, 9, 5, 0, 0, time.UTC),
			want: "(Now: Mon 9:05am UTC)",
		},
		{
			name: "midnight",
			now:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			want: "(Now: Tue 12:00am UTC)",
		},
		{
			name: "noon",
			now:  time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC),
			want: "(Now: Wed 12:00pm UTC)",
		},
		{
			name: "non_utc_input_converted",
			now:  time.Date(2026, 8, 29, 8, 40, 0, 0, time.FixedZone("PDT", -7*3600)),
			want: "(Now: Sat 3:40pm UTC)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChannelName(tc.now); got != tc.want {
				t.Fatalf("ChannelName(%v) = %q, want %q", tc.now, got, tc.want)
			}
		})
	}
}

func TestChannelName_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 40, 30, 12345, time.UTC)
	first := ChannelName(now)
	for i := 0; i < 10; i++ {
		if got := ChannelName(now); got != first {
			t.Fatalf("ChannelName not deterministic: %q vs %q", got, first)
		}
	}
}

func TestNextTickAt(t *testing.T) {
	interval := 10 * time.Minute

	cases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid_interval",
			now:  time.Date(2026, 8, 29, 15, 43, 12, 0, time.UTC),
			want: time.Date(2026, 8, 29, 15, 50, 0, 0, time.UTC),
		},
		{
			name: "exactly_on_boundary_advances",
			now:  time.Date(2026, 8, 29, 15, 40, 0, 0, time.UTC),
			want: time.Date(2026, 8, 29, 15, 50, 0, 0, time.UTC),
		},
		{
			name: "just_after_boundary",
			now:  time.Date(2026, 8, 29, 15, 50, 0, 1, time.UTC),
			want: time.Date(2026, 8, 29, 16, 0, 0, 0, time.UTC),
		},
		{
			name: "hour_rollover",
			now:  time.Date(2026, 8, 29, 23, 55, 59, 0, time.UTC),
			want: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextTickAt(tc.now, interval)
			if !got.Equal(tc.want) {
				t.Fatalf("NextTickAt(%v) = %v, want %v", tc.now, got, tc.want)
			}
			if !got.After(tc.now) {
				t.Fatalf("NextTickAt(%v) = %v is not in the future", tc.now, got)
			}
			if got.Sub(tc.now) > interval {
				t.Fatalf("NextTickAt(%v) = %v is more than one interval away", tc.now, got)
			}
		})
	}
}

func TestNextTickAt_OneTickPerInterval(t *testing.T) {
	// Walking the clock forward tick by tick must yield boundaries spaced
	// exactly one interval apart.
	interval := 10 * time.Minute
	now := time.Date(2026, 8, 29, 15, 43, 12, 0, time.UTC)

	prev := NextTickAt(now, interval)
	for i := 0; i < 12; i++ {
		next := NextTickAt(prev, interval)
		if next.Sub(prev) != interval {
			t.Fatalf("tick %d: %v to %v is %v apart, want %v", i, prev, next, next.Sub(prev), interval)
		}
		prev = next
	}
}
