package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Job fires at a fixed time of day on weekdays.
type Job struct {
	Name      string
	TimeOfDay string // "HH:MM" in the scheduler's location
	Weekdays  map[time.Weekday]bool
	Fn        func(ctx context.Context) error

	reschedule chan string
}

// WeekdaysMonFri is the default firing window for reminder jobs.
func WeekdaysMonFri() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

// Scheduler runs time-of-day jobs and supports live rescheduling.
type Scheduler struct {
	jobs     map[string]*Job
	location *time.Location
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
	started  bool
}

// NewScheduler creates a scheduler firing in the given location.
func NewScheduler(location *time.Location) *Scheduler {
	if location == nil {
		location = time.Local
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		jobs:     make(map[string]*Job),
		location: location,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// AddJob registers a job. Must be called before Start.
func (s *Scheduler) AddJob(name string, timeOfDay string, weekdays map[time.Weekday]bool, fn func(ctx context.Context) error) error {
	if _, err := parseTimeOfDay(timeOfDay); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[name] = &Job{
		Name:       name,
		TimeOfDay:  timeOfDay,
		Weekdays:   weekdays,
		Fn:         fn,
		reschedule: make(chan string, 1),
	}
	slog.Info("Cron job registered", "name", name, "time_of_day", timeOfDay)
	return nil
}

// Reschedule moves a registered job to a new time of day. Takes effect
// without a restart.
func (s *Scheduler) Reschedule(name string, timeOfDay string) error {
	if _, err := parseTimeOfDay(timeOfDay); err != nil {
		return err
	}

	s.mu.Lock()
	job, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown cron job: %s", name)
	}

	if !s.isStarted() {
		job.TimeOfDay = timeOfDay
		return nil
	}

	// Drain any pending reschedule so the latest time wins.
	select {
	case <-job.reschedule:
	default:
	}
	job.reschedule <- timeOfDay

	slog.Info("Cron job rescheduled", "name", name, "time_of_day", timeOfDay)
	return nil
}

// Start begins running all scheduled jobs
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = true
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

func (s *Scheduler) isStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// runJob sleeps until the next firing time, runs, and repeats. A reschedule
// message interrupts the sleep and recomputes the wait.
func (s *Scheduler) runJob(job *Job) {
	defer s.wg.Done()

	timeOfDay := job.TimeOfDay
	for {
		wait := s.untilNext(timeOfDay, job.Weekdays)
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case newTime := <-job.reschedule:
			timer.Stop()
			timeOfDay = newTime
		case <-timer.C:
			s.executeJob(job)
		}
	}
}

// executeJob executes a job and logs results
func (s *Scheduler) executeJob(job *Job) {
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

// untilNext computes the duration until the job's next firing instant.
func (s *Scheduler) untilNext(timeOfDay string, weekdays map[time.Weekday]bool) time.Duration {
	minutes, err := parseTimeOfDay(timeOfDay)
	if err != nil {
		// Validated at AddJob/Reschedule; fall back to a daily retry.
		return 24 * time.Hour
	}

	now := time.Now().In(s.location)
	candidate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location).
		Add(time.Duration(minutes) * time.Minute)

	for i := 0; i < 8; i++ {
		if candidate.After(now) && (weekdays == nil || weekdays[candidate.Weekday()]) {
			return candidate.Sub(now)
		}
		candidate = candidate.AddDate(0, 0, 1)
	}

	return 24 * time.Hour
}

func parseTimeOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day: %s", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid time of day: %s", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time of day: %s", s)
	}
	return hh*60 + mm, nil
}
