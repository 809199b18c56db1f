package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hourlog/timesheet/internal/model"
	"github.com/hourlog/timesheet/internal/repository"
)

var (
	// ErrEndBeforeStart rejects edits whose end time is not strictly
	// after the start time. The record is left unchanged.
	ErrEndBeforeStart = errors.New("end time must be after start time")
)

// EditInput carries an edit form submission. Clock fields are HH:MM
// wall-clock times on LogDate; an empty EndClock reverts the record to
// running.
type EditInput struct {
	LogDate    string
	Client     string
	Task       string
	Details    string
	StartClock string
	EndClock   string
}

// LogService covers direct record access, corrections and deletes.
type LogService struct {
	repo repository.LogRepository
}

func NewLogService(repo repository.LogRepository) *LogService {
	return &LogService{repo: repo}
}

func (s *LogService) ByID(id string) (*model.LogRecord, error) {
	return s.repo.ByID(id)
}

// CompletedInMonth returns the completed records of a YYYY-MM month,
// newest first. Feeds the dashboard history and the CSV export.
func (s *LogService) CompletedInMonth(month string) ([]*model.LogRecord, error) {
	return s.repo.CompletedInMonth(month)
}

// Edit applies a correction. Start (and end, if given) are rebuilt from
// LogDate plus the submitted clock times. An edit with an end time not
// after the start is rejected without mutation; an edit without an end
// time clears end_time and hours, reverting the record to running
// regardless of its prior state.
func (s *LogService) Edit(id string, in EditInput) error {
	log, err := s.repo.ByID(id)
	if err != nil {
		return err
	}

	start, err := parseDateClock(in.LogDate, in.StartClock)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}

	log.LogDate = in.LogDate
	log.Client = in.Client
	log.Task = in.Task
	log.Details = in.Details
	log.StartTime = start

	if in.EndClock == "" {
		log.EndTime = nil
		log.Hours = nil
		return s.repo.Update(log)
	}

	end, err := parseDateClock(in.LogDate, in.EndClock)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	if !end.After(start) {
		return ErrEndBeforeStart
	}

	hours := model.HoursBetween(start, end)
	log.EndTime = &end
	log.Hours = &hours
	return s.repo.Update(log)
}

func (s *LogService) Delete(id string) error {
	return s.repo.Delete(id)
}

// parseDateClock rebuilds a timestamp from a YYYY-MM-DD date and an
// HH:MM clock time, in local time like the timer itself.
func parseDateClock(date, clock string) (time.Time, error) {
	return time.ParseInLocation(
		model.DateFormat+" "+model.ClockFormat,
		date+" "+clock,
		time.Local,
	)
}
