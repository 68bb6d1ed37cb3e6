package bootstrap

import (
	"time"

	cronjob "github.com/GoSim-25-26J-441/taskboard-backend/internal/cron"
)

// NewMaintenance schedules the periodic sweeps of session and rate-limit state.
func NewMaintenance(svc *Services, interval time.Duration) (*cronjob.Scheduler, error) {
	s := cronjob.NewScheduler()
	if err := s.Every(interval, "session.sweep", svc.Sessions.Sweep); err != nil {
		return nil, err
	}
	if err := s.Every(interval, "ratelimit.sweep", svc.AuthLimiter.Sweep); err != nil {
		return nil, err
	}
	return s, nil
}
