package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"gorm.io/gorm"
)

// RetentionDays is how long system_logs rows are kept.
const RetentionDays = 30

// StartCleanup deletes expired system_logs rows once a day until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				PurgeBefore(db, time.Now().AddDate(0, 0, -RetentionDays))
			case <-done:
				return
			}
		}
	}()
}

// PurgeBefore removes system_logs rows older than cutoff.
func PurgeBefore(db *gorm.DB, cutoff time.Time) int64 {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return 0
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
	return result.RowsAffected
}
