package tasks

import (
	"context"
	"fmt"
	"time"
)

const storeHealthTimeout = 10 * time.Second

// newStoreHealthTask creates the scheduled task that verifies the key-value
// backend is reachable. Ticket correlation silently degrades to dropped
// replies when the store is down, so an explicit periodic check is the only
// place the outage becomes visible in the logs.
func newStoreHealthTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "store_health")

	return func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, storeHealthTimeout)
		defer cancel()

		startTime := time.Now()
		err := deps.Store.Ping(pingCtx)
		latency := time.Since(startTime)

		if err != nil {
			log.ErrorContext(ctx, "Key-value store health check failed", "error", err, "latency", latency)
			return fmt.Errorf("store health check failed: %w", err)
		}

		log.DebugContext(ctx, "Key-value store healthy", "latency", latency)
		return nil
	}
}
