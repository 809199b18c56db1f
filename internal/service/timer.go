package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hourlog/timesheet/internal/model"
	"github.com/hourlog/timesheet/internal/repository"
)

// TimerService owns the start/stop transitions and the
// single-active-timer invariant.
type TimerService struct {
	repo repository.LogRepository
	now  func() time.Time
}

func NewTimerService(repo repository.LogRepository) *TimerService {
	return &TimerService{
		repo: repo,
		now:  time.Now,
	}
}

// Start creates a running record dated today. Returns
// repository.ErrTimerRunning when another timer is still active.
func (s *TimerService) Start(client, task string) (*model.LogRecord, error) {
	now := s.now()
	log := &model.LogRecord{
		ID:        uuid.New().String(),
		LogDate:   now.Format(model.DateFormat),
		Client:    client,
		Task:      task,
		StartTime: now,
		CreatedAt: now,
	}

	err := s.repo.Start(log)
	if err != nil {
		return nil, err
	}

	return log, nil
}

// Stop completes the record: end time now, elapsed hours rounded to 2
// decimals, details stored. Returns repository.ErrLogNotFound for a
// missing id.
func (s *TimerService) Stop(id, details string) (*model.LogRecord, error) {
	log, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	end := s.now()
	hours := model.HoursBetween(log.StartTime, end)

	err = s.repo.Complete(log.ID, end, details, hours)
	if err != nil {
		return nil, fmt.Errorf("failed to stop timer: %w", err)
	}

	log.EndTime = &end
	log.Details = details
	log.Hours = &hours
	return log, nil
}

// Active returns the running record, or nil when no timer is running.
func (s *TimerService) Active() (*model.LogRecord, error) {
	log, err := s.repo.Active()
	if err == repository.ErrLogNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}
