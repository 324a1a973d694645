package attendance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day ("15:04").
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// On places the clock time on the given calendar day in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// Rules holds the attendance derivation parameters: the lateness cutoff,
// the standard shift length used for overtime, the daily sweep time, and
// the location all wall-clock values are interpreted in.
type Rules struct {
	LateCutoff         ClockTime
	StandardShiftHours float64
	SweepAt            ClockTime
	Location           *time.Location
}

func NewRules(lateCutoff, sweepAt string, standardShiftHours float64, timezone string) (Rules, error) {
	cutoff, err := ParseClockTime(lateCutoff)
	if err != nil {
		return Rules{}, fmt.Errorf("late cutoff: %w", err)
	}
	sweep, err := ParseClockTime(sweepAt)
	if err != nil {
		return Rules{}, fmt.Errorf("sweep time: %w", err)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return Rules{}, fmt.Errorf("timezone: %w", err)
	}
	return Rules{
		LateCutoff:         cutoff,
		StandardShiftHours: standardShiftHours,
		SweepAt:            sweep,
		Location:           loc,
	}, nil
}

// LateBy returns whole minutes past the cutoff, or zero when the punch-in
// is on time. A punch-in exactly at the cutoff counts as late with zero
// elapsed minutes rounded down.
func (r Rules) LateBy(punchIn time.Time) int {
	local := punchIn.In(r.Location)
	cutoff := r.LateCutoff.On(local)
	if local.Before(cutoff) {
		return 0
	}
	return int(local.Sub(cutoff).Minutes())
}

// Classify derives the day status from the punch-in instant.
func (r Rules) Classify(punchIn time.Time) (status Status, isLate bool, lateBy int) {
	local := punchIn.In(r.Location)
	cutoff := r.LateCutoff.On(local)
	if local.Before(cutoff) {
		return StatusPresent, false, 0
	}
	return StatusLate, true, r.LateBy(punchIn)
}

// WorkHours computes working hours and overtime for a closed punch pair,
// both rounded to two decimals. Overtime is the excess beyond the
// standard shift, never negative.
func (r Rules) WorkHours(punchIn, punchOut time.Time) (workingHours, overtime float64) {
	workingHours = round2(punchOut.Sub(punchIn).Hours())
	if workingHours > r.StandardShiftHours {
		overtime = round2(workingHours - r.StandardShiftHours)
	}
	return workingHours, overtime
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
