package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"velora.backend/internal/domain/repositories"
	"velora.backend/pkg/logger"
)

// resetCodeRetention keeps expired codes around long enough that verify-code
// can still tell the user "expired" rather than "invalid".
const resetCodeRetention = time.Hour

// ResetCodeExpiryJob sweeps long-expired password reset codes
type ResetCodeExpiryJob struct {
	users     repositories.UserRepository
	interval  time.Duration
	retention time.Duration
	stop      chan struct{}
}

func NewResetCodeExpiryJob(users repositories.UserRepository) *ResetCodeExpiryJob {
	return &ResetCodeExpiryJob{
		users:     users,
		interval:  time.Minute,
		retention: resetCodeRetention,
		stop:      make(chan struct{}),
	}
}

func (j *ResetCodeExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting reset code expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "reset code expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "reset code expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *ResetCodeExpiryJob) Stop() {
	close(j.stop)
}

func (j *ResetCodeExpiryJob) sweep(ctx context.Context) {
	cleared, err := j.users.ClearExpiredResetCodes(ctx, time.Now().Add(-j.retention))
	if err != nil {
		logger.Error(ctx, "failed to clear expired reset codes", zap.Error(err))
		return
	}
	if cleared > 0 {
		logger.Info(ctx, "cleared expired reset codes", zap.Int64("count", cleared))
	}
}
