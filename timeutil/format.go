package timeutil

import (
	"fmt"
	"time"
)

// ChannelName formats the clock channel display name for the given
// instant, always in UTC. The 12-hour time carries no leading zero and a
// lowercase am/pm marker, e.g. "(Now: Sat 3:40pm UTC)".
func ChannelName(now time.Time) string {
	return fmt.Sprintf("(Now: %s UTC)", now.UTC().Format("Mon 3:04pm"))
}

// NextTickAt returns the first instant strictly after now that lands on a
// wall-clock boundary of interval, e.g. :00/:10/:20 past the hour for a
// 10-minute interval. Sleeping until the returned instant rather than
// using a free-running ticker keeps renames on round clock times and
// self-corrects after a suspended host wakes up.
func NextTickAt(now time.Time, interval time.Duration) time.Time {
	return now.Truncate(interval).Add(interval)
}
