package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hourlog/timesheet/internal/db"
	"github.com/hourlog/timesheet/internal/repository"
)

func newTestRepo(t *testing.T) repository.LogRepository {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// in-memory sqlite: every connection is its own database
	database.SetMaxOpenConns(1)

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { database.Close() })
	return repository.NewLogRepository(database)
}

// fixedClock returns a clock function that yields the given times in
// sequence, then keeps returning the last one.
func fixedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestTimer_StartStopScenario(t *testing.T) {
	repo := newTestRepo(t)
	timer := NewTimerService(repo)

	start := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)
	stop := time.Date(2026, 3, 9, 11, 30, 0, 0, time.Local)
	timer.now = fixedClock(start, stop)

	log, err := timer.Start("Acme", "Design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.LogDate != "2026-03-09" {
		t.Fatalf("expected log_date 2026-03-09, got %s", log.LogDate)
	}
	if !log.Running() {
		t.Fatalf("expected new record to be running")
	}

	stopped, err := timer.Stop(log.ID, "wireframes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stopped.Hours == nil || *stopped.Hours != 2.5 {
		t.Fatalf("expected 2.5 hours, got %v", stopped.Hours)
	}
	if stopped.Details != "wireframes" {
		t.Fatalf("expected details wireframes, got %q", stopped.Details)
	}
	if stopped.EndTime == nil {
		t.Fatalf("expected end time set")
	}

	// Persisted state matches.
	got, err := repo.ByID(log.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Hours == nil || *got.Hours != 2.5 {
		t.Fatalf("expected persisted hours 2.5, got %v", got.Hours)
	}
}

func TestTimer_SecondStartIsRejected(t *testing.T) {
	repo := newTestRepo(t)
	timer := NewTimerService(repo)
	timer.now = fixedClock(time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local))

	if _, err := timer.Start("Acme", "Design"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := timer.Start("Beta", "Review")
	if err != repository.ErrTimerRunning {
		t.Fatalf("expected ErrTimerRunning, got %v", err)
	}

	active, err := timer.Active()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active == nil || active.Client != "Acme" {
		t.Fatalf("expected the first timer to still be the active one")
	}
}

func TestTimer_StopMissingID(t *testing.T) {
	repo := newTestRepo(t)
	timer := NewTimerService(repo)

	_, err := timer.Stop("nope", "details")
	if err != repository.ErrLogNotFound {
		t.Fatalf("expected ErrLogNotFound, got %v", err)
	}
}

func TestTimer_ActiveNilWhenIdle(t *testing.T) {
	repo := newTestRepo(t)
	timer := NewTimerService(repo)

	active, err := timer.Active()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active != nil {
		t.Fatalf("expected no active timer, got %+v", active)
	}
}

func TestTimer_HoursAlwaysRoundedAndPositive(t *testing.T) {
	repo := newTestRepo(t)
	timer := NewTimerService(repo)

	start := time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local)
	// 100 minutes = 1.666... hours, rounds to 1.67.
	stop := start.Add(100 * time.Minute)
	timer.now = fixedClock(start, stop)

	log, err := timer.Start("Acme", "Design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stopped, err := timer.Stop(log.ID, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *stopped.Hours != 1.67 {
		t.Fatalf("expected 1.67 hours, got %v", *stopped.Hours)
	}
	if *stopped.Hours < 0 {
		t.Fatalf("hours must be non-negative")
	}
}
