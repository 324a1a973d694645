package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobNext(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	job := Job{
		Name:     "auto_punch_out",
		Hour:     23,
		Minute:   30,
		Location: loc,
	}

	// Before the firing time: fires today.
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, loc)
	next := job.next(now)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 30, 0, 0, loc), next)

	// At the firing time: rolls to tomorrow (strictly after now).
	now = time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
	next = job.next(now)
	assert.Equal(t, time.Date(2024, 3, 11, 23, 30, 0, 0, loc), next)

	// After the firing time: fires tomorrow.
	now = time.Date(2024, 3, 10, 23, 45, 0, 0, loc)
	next = job.next(now)
	assert.Equal(t, time.Date(2024, 3, 11, 23, 30, 0, 0, loc), next)
}

func TestJobNextKeepsWallClockAcrossDST(t *testing.T) {
	t.Parallel()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	job := Job{
		Name:     "auto_punch_out",
		Hour:     23,
		Minute:   30,
		Location: loc,
	}

	// 2024-03-10 is the spring-forward day (02:00 -> 03:00). The job
	// must still fire at 23:30 local, not an hour off.
	now := time.Date(2024, 3, 10, 1, 0, 0, 0, loc)
	next := job.next(now)
	assert.Equal(t, 23, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.Equal(t, time.Date(2024, 3, 10, 23, 30, 0, 0, loc), next)

	// 2024-11-03 is the fall-back day (02:00 -> 01:00).
	now = time.Date(2024, 11, 3, 1, 0, 0, 0, loc)
	next = job.next(now)
	assert.Equal(t, 23, next.Hour())
	assert.Equal(t, 30, next.Minute())
}

func TestRunOnce(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	ran := 0
	s.AddDailyJob("test_job", 23, 30, time.UTC, func(ctx context.Context) error {
		ran++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 1, ran)
}

func TestSchedulerStop(t *testing.T) {
	t.Parallel()
	s := NewScheduler()
	s.AddDailyJob("never_fires", 23, 30, time.UTC, func(ctx context.Context) error {
		return nil
	})

	s.Start()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
