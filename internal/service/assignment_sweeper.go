package service

import (
	"context"
	"time"

	"motoservice-be/internal/pkg/logger"
)

// AssignmentSweeper periodically retries assignment of confirmed bookings.
type AssignmentSweeper struct {
	assigner IAssignmentService
	interval time.Duration
	logger   logger.ILogger
}

func NewAssignmentSweeper(assigner IAssignmentService, interval time.Duration, logger logger.ILogger) *AssignmentSweeper {
	return &AssignmentSweeper{
		assigner: assigner,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled.
func (w *AssignmentSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("SWEEPER", "Assignment sweeper started", map[string]interface{}{
		"interval": w.interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("SWEEPER", "Assignment sweeper stopped", nil)
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *AssignmentSweeper) tick(ctx context.Context) {
	res, err := w.assigner.Sweep(ctx)
	if err != nil {
		w.logger.Error("SWEEPER", "Assignment sweep failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if res.Skipped {
		w.logger.Debug("SWEEPER", "Sweep lease held by another instance", nil)
	}
}
