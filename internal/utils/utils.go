// Package utils holds small helpers shared across components.
package utils

import (
	"context"
	"time"
)

var sleep = time.Sleep

// WaitFor pauses for d or until the context is cancelled, whichever comes
// first. A non-positive duration returns immediately. Scrapers use it as a
// cancellable polite delay between requests.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
