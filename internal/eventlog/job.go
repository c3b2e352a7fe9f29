package eventlog

import (
	"context"
	"time"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/metrics"
)

// CleanupJob prunes the crop event journal from the maintenance scheduler.
// Each run carries a pass ID so its log lines group with the store's.
type CleanupJob struct {
	service       Service
	retentionDays int
	now           func() time.Time
}

// NewCleanupJob creates a cleanup job keeping retentionDays of crop events.
// A non-positive retention falls back to DefaultRetentionDays.
func NewCleanupJob(service Service, retentionDays int) *CleanupJob {
	if retentionDays < 1 {
		retentionDays = DefaultRetentionDays
	}
	return &CleanupJob{
		service:       service,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// Cutoff is the creation time before which a run removes entries
func (j *CleanupJob) Cutoff() time.Time {
	return j.now().AddDate(0, 0, -j.retentionDays)
}

// Process removes journal entries older than the retention window
func (j *CleanupJob) Process(ctx context.Context) error {
	if _, ok := logger.PassIDFromContext(ctx); !ok {
		ctx = logger.WithPassID(ctx, logger.GeneratePassID())
	}
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupJobStarting,
		LogFieldRetentionDays, j.retentionDays,
		LogFieldCutoff, j.Cutoff().Format(time.RFC3339))

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retentionDays)
	duration := time.Since(start)

	if err != nil {
		metrics.JournalCleanups.WithLabelValues(metrics.ResultFailed).Inc()
		log.Error(LogMsgCleanupJobFailed, LogFieldError, err, LogFieldDuration, duration)
		return err
	}

	metrics.JournalCleanups.WithLabelValues(metrics.ResultOK).Inc()
	metrics.CropEventsPruned.Add(float64(count))
	if count == 0 {
		log.Debug(LogMsgCleanupJobNothingToDo, LogFieldDuration, duration)
		return nil
	}
	log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, count, LogFieldDuration, duration)
	return nil
}
