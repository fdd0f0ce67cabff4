package cleanup

import (
	"context"
	"log"
	"time"

	"github.com/lazygeek007/connect-four/internal/service/game"
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
}

func NewWorker(sm *game.SessionManager, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Worker{SessionManager: sm, Interval: interval}
}

// Start initiates the background ticker. It returns immediately and
// the worker keeps pruning until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		w.runCleanup(ctx)

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup(ctx)
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup(ctx context.Context) {
	log.Println("[CLEANUP] Starting scheduled cleanup task...")
	w.SessionManager.PruneIdle(ctx)
}
