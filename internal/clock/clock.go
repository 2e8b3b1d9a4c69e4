package clock

import (
	"context"
	"time"
)

const DefaultInterval = time.Second

// Run - calls tick once per interval until ctx is done. A non-positive interval
// falls back to DefaultInterval.
func Run(ctx context.Context, interval time.Duration, tick func()) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick()
		}
	}
}
