package workers

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Sweeper is anything that drops idle state and reports how much it removed.
type Sweeper interface {
	Sweep() int
}

// SweepFunc adapts a function to Sweeper.
type SweepFunc func() int

func (f SweepFunc) Sweep() int { return f() }

type Job struct {
	Name     string
	Interval time.Duration
	Sweeper  Sweeper
}

// Housekeeping runs in-memory cleanup jobs on a gocron scheduler.
type Housekeeping struct {
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

func NewHousekeeping(logger *zap.Logger, jobs ...Job) (*Housekeeping, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	h := &Housekeeping{scheduler: sched, logger: logger.Named("housekeeping")}
	for _, job := range jobs {
		if err := h.add(job); err != nil {
			_ = sched.Shutdown()
			return nil, err
		}
	}
	return h, nil
}

func (h *Housekeeping) add(job Job) error {
	_, err := h.scheduler.NewJob(
		gocron.DurationJob(job.Interval),
		gocron.NewTask(func() {
			if removed := job.Sweeper.Sweep(); removed > 0 {
				h.logger.Debug("swept idle entries", zap.String("job", job.Name), zap.Int("removed", removed))
			}
		}),
		gocron.WithName(job.Name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule %s: %w", job.Name, err)
	}
	return nil
}

func (h *Housekeeping) Start() {
	h.scheduler.Start()
}

func (h *Housekeeping) Shutdown() error {
	return h.scheduler.Shutdown()
}
