// Package resilience retries operations that fail while a backing service
// is still coming up, such as the first connection to a test database
// container.
//
//	db, err := resilience.Retry(ctx, resilience.Policy{
//		Attempts: 5,
//		Initial:  500 * time.Millisecond,
//	}, func(attempt int) (*sql.DB, error) {
//		return open(ctx)
//	})
//
// Backoff grows exponentially from Initial by Factor, is capped at Max and
// is spread by Jitter. Context cancellation is never retried.
package resilience
