package jobs

import (
	"context"
	"time"

	"onerental-backend/internal/logger"
)

// PurgeExpiredDismissals deletes insight dismissal rows whose window has
// lapsed. Expired rows are already ignored at read time; this keeps the
// table from growing with snoozes that ran out long ago.
func (jr *JobRunner) PurgeExpiredDismissals() {
	jr.runWithRecovery("PurgeExpiredDismissals", func() {
		ctx := context.Background()

		deleted, err := jr.store.DismissalRepository.DeleteExpired(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to purge expired dismissals", "error", err)
			return
		}
		logger.Info("Purged expired dismissals", "count", deleted)
	})
}
