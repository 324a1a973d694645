package cron

import (
	"context"
	"log/slog"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs wires the attendance service's batch work into the
// scheduler.
type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
	rules         attendance.Rules
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService, rules attendance.Rules) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceSvc: attendanceSvc,
		rules:         rules,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob(
		"auto_punch_out",
		j.rules.SweepAt.Hour, j.rules.SweepAt.Minute,
		j.rules.Location,
		j.AutoPunchOut,
	)
}

// AutoPunchOut force-closes today's open attendance records at the sweep
// time. The service handles per-record fault isolation; re-runs find
// nothing eligible.
func (j *AttendanceJobs) AutoPunchOut(ctx context.Context) error {
	slog.Info("Cron: Starting auto punch-out job")

	result, err := j.attendanceSvc.RunAutoPunchOut(ctx)
	if err != nil {
		return err
	}

	if result.Closed == 0 && result.Failed == 0 {
		slog.Info("Cron: No employees to auto punch-out")
		return nil
	}

	slog.Info("Cron: Auto punch-out completed", "closed", result.Closed, "failed", result.Failed)
	return nil
}
