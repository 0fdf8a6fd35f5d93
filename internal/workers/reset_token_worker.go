package workers

import (
	"context"
	"time"

	"sportline_backend/internal/logger"
	"sportline_backend/internal/repositories"
)

// ResetTokenWorker периодически вычищает просроченные reset-пары.
// Просроченный токен и так не проходит проверку при чтении,
// воркер лишь не дает мертвым дайджестам копиться в таблице.
type ResetTokenWorker struct {
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewResetTokenWorker(userRepo repositories.UserRepository, interval time.Duration) *ResetTokenWorker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &ResetTokenWorker{
		userRepo: userRepo,
		interval: interval,
	}
}

// Run блокирует до отмены контекста
func (w *ResetTokenWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Reset token cleanup worker started", "interval", w.interval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reset token cleanup worker stopped")
			return
		case <-ticker.C:
			cleaned, err := w.userRepo.CleanExpiredResetTokens()
			if err != nil {
				logger.Error("Reset token cleanup failed", "error", err)
				continue
			}
			if cleaned > 0 {
				logger.Info("Expired reset tokens cleaned", "count", cleaned)
			}
		}
	}
}
