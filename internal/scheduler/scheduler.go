// Package scheduler runs the periodic weather refresh for long-lived
// processes such as the watch command.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"tasker/internal/logging"
	"tasker/internal/store"

	"github.com/robfig/cron/v3"
)

// WeatherRefresher is the slice of the task store the scheduler drives
type WeatherRefresher interface {
	RefreshWeather(ctx context.Context)
	FetchWeatherByLocation(ctx context.Context)
	HasOutdoorTasks() bool
	Weather() store.WeatherStatus
}

var _ WeatherRefresher = (*store.Store)(nil)

// Scheduler wraps cron-based jobs
type Scheduler struct {
	cron     *cron.Cron
	refresh  WeatherRefresher
	interval time.Duration
	now      func() time.Time
}

// New creates a scheduler refreshing the weather at the given interval
func New(refresh WeatherRefresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		refresh:  refresh,
		interval: interval,
		now:      time.Now,
	}
}

// Start registers the refresh job and starts the cron loop. When the last
// successful fetch is already older than the interval, one refresh runs
// immediately instead of waiting a full period.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", s.interval)
	}

	spec := fmt.Sprintf("@every %ds", int(s.interval.Seconds()))
	if _, err := s.cron.AddFunc(spec, func() { s.tick(ctx) }); err != nil {
		return fmt.Errorf("failed to register refresh job: %w", err)
	}

	if s.isStale() {
		s.tick(ctx)
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// tick refreshes the weather, but only while outdoor tasks exist. Tasks
// without an outdoor flag do not justify network traffic.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.refresh.HasOutdoorTasks() {
		logging.Debugln("scheduler: skipping refresh, no outdoor tasks")
		return
	}

	if s.refresh.Weather().Snapshot == nil {
		// First fetch for this process: RefreshWeather would decline
		s.refresh.FetchWeatherByLocation(ctx)
		return
	}
	s.refresh.RefreshWeather(ctx)
}

func (s *Scheduler) isStale() bool {
	last := s.refresh.Weather().LastUpdate
	return last.IsZero() || s.now().Sub(last) >= s.interval
}
