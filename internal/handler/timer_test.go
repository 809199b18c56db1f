package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/hourlog/timesheet/internal/db"
	"github.com/hourlog/timesheet/internal/repository"
	"github.com/hourlog/timesheet/internal/service"
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

func postForm(t *testing.T, h http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestStartHandler_RedirectsToDashboard(t *testing.T) {
	repo := newTestRepo(t)
	timer := service.NewTimerService(repo)
	h := NewTimerHandler(timer)

	rec := postForm(t, h.Start, "/start", url.Values{
		"client": {"Acme"},
		"task":   {"Design"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}

	active, err := timer.Active()
	if err != nil || active == nil {
		t.Fatalf("expected a running timer, got %v %v", active, err)
	}
}

func TestStartHandler_SecondStartSilentlyRedirects(t *testing.T) {
	repo := newTestRepo(t)
	timer := service.NewTimerService(repo)
	h := NewTimerHandler(timer)

	postForm(t, h.Start, "/start", url.Values{"client": {"Acme"}, "task": {"Design"}})
	rec := postForm(t, h.Start, "/start", url.Values{"client": {"Beta"}, "task": {"Review"}})

	// Invariant violation is not surfaced as an error.
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	active, err := timer.Active()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active.Client != "Acme" {
		t.Fatalf("expected original timer untouched, got %s", active.Client)
	}
}

func TestStartHandler_MissingLabelsRejected(t *testing.T) {
	repo := newTestRepo(t)
	h := NewTimerHandler(service.NewTimerService(repo))

	rec := postForm(t, h.Start, "/start", url.Values{"client": {""}, "task": {"Design"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStopHandler_CompletesRecord(t *testing.T) {
	repo := newTestRepo(t)
	timer := service.NewTimerService(repo)
	h := NewTimerHandler(timer)

	log, err := timer.Start("Acme", "Design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := postForm(t, h.Stop, "/stop", url.Values{
		"log_id":  {log.ID},
		"details": {"wireframes"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	got, err := repo.ByID(log.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Running() || got.Details != "wireframes" {
		t.Fatalf("expected completed record with details, got %+v", got)
	}
}

func TestStopHandler_MissingIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	h := NewTimerHandler(service.NewTimerService(repo))

	rec := postForm(t, h.Stop, "/stop", url.Values{"log_id": {"nope"}, "details": {"x"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 no-op redirect, got %d", rec.Code)
	}
}
