package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Sweeper is the sweep surface the scheduler drives.
type Sweeper interface {
	SendReminders(ctx context.Context) error
	PromoteLive(ctx context.Context) error
	CompleteFinished(ctx context.Context) error
}

type task struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
	running  atomic.Bool
}

// Scheduler owns three independent periodic tasks: the hourly reminder
// sweep and the two per-minute status-transition sweeps. Each task carries
// its own overlap guard so a slow tick is skipped rather than stacked.
type Scheduler struct {
	tasks  []*task
	logger logger.Logger
}

func New(sweeper Sweeper, reminderInterval, transitionInterval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		tasks: []*task{
			{name: "reminder", interval: reminderInterval, run: sweeper.SendReminders},
			{name: "live-transition", interval: transitionInterval, run: sweeper.PromoteLive},
			{name: "complete-transition", interval: transitionInterval, run: sweeper.CompleteFinished},
		},
		logger: log,
	}
}

// Start runs all tasks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started",
		logger.Int("tasks", len(s.tasks)),
	)

	var wg sync.WaitGroup
	for _, t := range s.tasks {
		wg.Add(1)
		go func(t *task) {
			defer wg.Done()
			s.runTask(ctx, t)
		}(t)
	}
	wg.Wait()

	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runTask(ctx context.Context, t *task) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	s.logger.Info("task started",
		logger.String("task", t.name),
		logger.Duration("interval", t.interval),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, t)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, t *task) {
	if !t.running.CompareAndSwap(false, true) {
		s.logger.Warn("previous run still in progress, skipping tick",
			logger.String("task", t.name),
		)
		return
	}
	defer t.running.Store(false)

	// A tick gets at most its own period, so a stalled sweep cannot block
	// the schedule indefinitely.
	tickCtx, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	if err := t.run(tickCtx); err != nil {
		s.logger.Error("sweep failed",
			logger.String("task", t.name),
			logger.String("error", err.Error()),
		)
	}
}
