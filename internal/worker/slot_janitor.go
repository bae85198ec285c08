package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Purger deletes expired credential slots and reports how many were removed.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StartSlotJanitor purges expired slots every interval until ctx is done.
// Backends with native expiry do not need it.
func StartSlotJanitor(ctx context.Context, purger Purger, interval time.Duration, logger *zap.Logger) {
	if purger == nil || interval <= 0 {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	go runJanitor(ctx, purger, interval, logger)
}

func runJanitor(ctx context.Context, purger Purger, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := purger.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("slot purge failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("purged expired credential slots", zap.Int64("removed", removed))
			}
		}
	}
}
