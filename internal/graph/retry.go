package graph

import (
	"context"
	"math/rand/v2"
	"time"
)

// maxReloadAttempts bounds the reloads tried after a single file event.
const maxReloadAttempts = 3

const (
	backoffBase = 50 * time.Millisecond
	backoffCap  = time.Second
)

// backoff returns a duration for attempt n (0-indexed) with jitter.
func backoff(attempt int) time.Duration {
	base := backoffBase << uint(attempt)
	if base > backoffCap || base <= 0 {
		base = backoffCap
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

// reloadWithRetry reloads the graph, trying again while the file is still
// being written. Editors often truncate before writing, so the first
// event may see an empty or partial document.
func (s *Store) reloadWithRetry(ctx context.Context) error {
	var err error
	for attempt := range maxReloadAttempts {
		if err = s.Reload(); err == nil {
			return nil
		}
		if attempt == maxReloadAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff(attempt)):
		}
	}
	return err
}
