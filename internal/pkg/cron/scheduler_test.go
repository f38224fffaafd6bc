package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"17:30", 1050, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"07:60", 0, true},
		{"0700", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, c := range cases {
		got, err := parseTimeOfDay(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseTimeOfDay(%q) = %d, want error", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTimeOfDay(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseTimeOfDay(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestAddJobRejectsBadTime(t *testing.T) {
	s := NewScheduler(time.UTC)
	err := s.AddJob("bad", "25:00", nil, func(ctx context.Context) error { return nil })
	if err == nil {
		t.Error("AddJob with invalid time should fail")
	}
}

func TestRescheduleUnknownJob(t *testing.T) {
	s := NewScheduler(time.UTC)
	if err := s.Reschedule("missing", "08:00"); err == nil {
		t.Error("Reschedule of an unregistered job should fail")
	}
}

func TestRescheduleBeforeStart(t *testing.T) {
	s := NewScheduler(time.UTC)
	if err := s.AddJob("reminder", "07:00", WeekdaysMonFri(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if err := s.Reschedule("reminder", "09:15"); err != nil {
		t.Fatal(err)
	}
	if got := s.jobs["reminder"].TimeOfDay; got != "09:15" {
		t.Errorf("TimeOfDay = %q, want 09:15", got)
	}
}

func TestRunOnce(t *testing.T) {
	s := NewScheduler(time.UTC)
	var calls int64
	for _, name := range []string{"a", "b"} {
		err := s.AddJob(name, "07:00", nil, func(ctx context.Context) error {
			atomic.AddInt64(&calls, 1)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	// A failing job must not stop the others.
	if err := s.AddJob("c", "07:00", nil, func(ctx context.Context) error {
		return errors.New("boom")
	}); err != nil {
		t.Fatal(err)
	}

	s.RunOnce(context.Background())
	if got := atomic.LoadInt64(&calls); got != 2 {
		t.Errorf("RunOnce ran %d jobs, want 2", got)
	}
}

func TestUntilNextHonorsWeekdays(t *testing.T) {
	s := NewScheduler(time.UTC)

	// Firing window restricted to one weekday: the wait must land inside
	// the scan horizon and be under a full week.
	for day := time.Sunday; day <= time.Saturday; day++ {
		wait := s.untilNext("12:00", map[time.Weekday]bool{day: true})
		if wait <= 0 || wait > 8*24*time.Hour {
			t.Errorf("untilNext for %v = %v, want within (0, 8d]", day, wait)
		}
	}
}

func TestUntilNextIsFuture(t *testing.T) {
	s := NewScheduler(time.UTC)
	for _, tod := range []string{"00:00", "07:00", "12:00", "23:59"} {
		if wait := s.untilNext(tod, nil); wait <= 0 {
			t.Errorf("untilNext(%q) = %v, want positive", tod, wait)
		}
	}
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(time.UTC)
	if err := s.AddJob("noop", "12:00", WeekdaysMonFri(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
