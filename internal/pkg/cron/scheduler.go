package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job represents a scheduled job that fires once per day at a fixed
// wall-clock time.
type Job struct {
	Name     string
	Hour     int
	Minute   int
	Location *time.Location
	Fn       func(ctx context.Context) error
}

// Scheduler manages scheduled jobs. It is constructed in main and
// injected where needed, so it can be omitted or replaced in tests.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScheduler creates a new cron scheduler
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:   make([]Job, 0),
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddDailyJob registers a job to run every day at the given hour and
// minute in loc.
func (s *Scheduler) AddDailyJob(name string, hour, minute int, loc *time.Location, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{
		Name:     name,
		Hour:     hour,
		Minute:   minute,
		Location: loc,
		Fn:       fn,
	})
	slog.Info("Cron job registered", "name", name, "hour", hour, "minute", minute)
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop gracefully stops all scheduled jobs
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// runJob sleeps until the job's next daily firing, runs it, and repeats.
func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(time.Until(job.next(time.Now())))
		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

// next returns the first firing instant strictly after now. The instant
// is built from calendar components so the job keeps its wall-clock
// time across DST transitions.
func (j Job) next(now time.Time) time.Time {
	local := now.In(j.Location)
	fire := time.Date(local.Year(), local.Month(), local.Day(), j.Hour, j.Minute, 0, 0, j.Location)
	if !fire.After(now) {
		fire = time.Date(local.Year(), local.Month(), local.Day()+1, j.Hour, j.Minute, 0, 0, j.Location)
	}
	return fire
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(job Job) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all jobs once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
