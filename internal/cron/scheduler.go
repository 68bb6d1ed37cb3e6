package cronjob

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	"github.com/robfig/cron/v3"
)

// Job is one unit of periodic maintenance.
type Job func(ctx context.Context) error

// Scheduler runs maintenance jobs on fixed intervals. A run that is still
// going when the next tick fires is skipped.
type Scheduler struct {
	c *cron.Cron
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		c: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
	}
}

// Every registers job to run each interval. Each run gets a context bounded by interval.
func (s *Scheduler) Every(interval time.Duration, name string, job Job) error {
	if interval < time.Second {
		return fmt.Errorf("cron job %s: interval %s is below one second", name, interval)
	}

	_, err := s.c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		ctx, cancel := context.WithTimeout(logging.WithRequestID(context.Background(), "cron-"+name), interval)
		defer cancel()

		if err := job(ctx); err != nil {
			logging.NewLogger(ctx).Error(name, err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron job %s: %w", name, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	log.Printf("cron scheduler started (%d jobs)", len(s.c.Entries()))
	s.c.Start()
}

// Stop halts scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
	}
}
