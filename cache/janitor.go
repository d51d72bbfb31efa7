package cache

import (
	"fmt"
	"time"

	"github.com/robfig/cron"

	"mockapi-backend/utils/logger"
)

// Janitor periodically sweeps expired entries out of a Coordinator using a
// cron schedule.
type Janitor struct {
	coordinator *Coordinator
	cron        *cron.Cron
	interval    time.Duration
	logger      logger.Logger
}

// NewJanitor creates a janitor sweeping at the given interval. A
// non-positive interval defaults to 30 seconds.
func NewJanitor(c *Coordinator, interval time.Duration, log logger.Logger) *Janitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Janitor{
		coordinator: c,
		cron:        cron.New(),
		interval:    interval,
		logger:      log,
	}
}

// Start schedules the sweep job and starts the cron scheduler in the
// background.
func (j *Janitor) Start() error {
	spec := fmt.Sprintf("@every %s", j.interval)
	if err := j.cron.AddFunc(spec, j.sweep); err != nil {
		return fmt.Errorf("failed to schedule cache sweep: %w", err)
	}
	j.cron.Start()
	j.logger.Infof("cache janitor started, sweeping %s", spec)
	return nil
}

// Stop halts the scheduler. In-flight sweeps finish on their own.
func (j *Janitor) Stop() {
	j.cron.Stop()
	j.logger.Info("cache janitor stopped")
}

func (j *Janitor) sweep() {
	if dropped := j.coordinator.Sweep(); dropped > 0 {
		j.logger.Debugf("cache janitor evicted %d expired entries", dropped)
	}
}
