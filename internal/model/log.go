package model

import (
	"math"
	"time"
)

// Wire formats for dates and wall-clock times. log_date is always a
// plain calendar date; edit forms submit clock times without seconds.
const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"
	MonthFormat = "2006-01"
)

// LogRecord is a single timesheet entry. A nil EndTime means the timer
// is still running; Hours is set iff EndTime is set.
type LogRecord struct {
	ID        string     `db:"id"`
	LogDate   string     `db:"log_date"`
	Client    string     `db:"client"`
	Task      string     `db:"task"`
	Details   string     `db:"details"`
	Hours     *float64   `db:"hours"`
	StartTime time.Time  `db:"start_time"`
	EndTime   *time.Time `db:"end_time"`
	CreatedAt time.Time  `db:"created_at"`
}

func (l *LogRecord) Running() bool {
	return l.EndTime == nil
}

// StartClock returns the start time as HH:MM for edit forms.
func (l *LogRecord) StartClock() string {
	return l.StartTime.Format(ClockFormat)
}

// EndClock returns the end time as HH:MM, or "" while running.
func (l *LogRecord) EndClock() string {
	if l.EndTime == nil {
		return ""
	}
	return l.EndTime.Format(ClockFormat)
}

// RoundHours rounds a duration in hours to 2 decimal places. Callers
// accumulate in full precision and round once at the end.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// HoursBetween returns the rounded decimal hours elapsed from start to end.
func HoursBetween(start, end time.Time) float64 {
	return RoundHours(end.Sub(start).Hours())
}
