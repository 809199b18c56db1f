package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hourlog/timesheet/internal/service"
)

func postPathForm(t *testing.T, h http.HandlerFunc, target, id string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestEditPage_MissingRecordRedirects(t *testing.T) {
	repo := newTestRepo(t)
	h := NewLogHandler(service.NewLogService(repo))

	req := httptest.NewRequest(http.MethodGet, "/logs/nope/edit", nil)
	req.SetPathValue("id", "nope")
	rec := httptest.NewRecorder()
	h.EditPage(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect for missing record, got %d", rec.Code)
	}
}

func TestSubmitEdit_InvalidRangeSilentlyRedirects(t *testing.T) {
	repo := newTestRepo(t)
	logs := service.NewLogService(repo)
	h := NewLogHandler(logs)

	timer := service.NewTimerService(repo)
	log, err := timer.Start("Acme", "Design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := postPathForm(t, h.SubmitEdit, "/logs/"+log.ID+"/edit", log.ID, url.Values{
		"log_date":   {"2026-03-09"},
		"client":     {"Acme"},
		"task":       {"Design"},
		"details":    {"x"},
		"start_time": {"10:00"},
		"end_time":   {"09:00"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected silent 303, got %d", rec.Code)
	}

	got, err := repo.ByID(log.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Client != "Acme" || !got.Running() {
		t.Fatalf("expected record unchanged, got %+v", got)
	}
}

func TestSubmitEdit_MalformedClockFailsRequest(t *testing.T) {
	repo := newTestRepo(t)
	h := NewLogHandler(service.NewLogService(repo))

	timer := service.NewTimerService(repo)
	log, err := timer.Start("Acme", "Design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := postPathForm(t, h.SubmitEdit, "/logs/"+log.ID+"/edit", log.ID, url.Values{
		"log_date":   {"2026-03-09"},
		"client":     {"Acme"},
		"task":       {"Design"},
		"start_time": {"not-a-time"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed input, got %d", rec.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := newTestRepo(t)
	h := NewLogHandler(service.NewLogService(repo))

	timer := service.NewTimerService(repo)
	log, err := timer.Start("Acme", "Design")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := postPathForm(t, h.Delete, "/logs/"+log.ID+"/delete", log.ID, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	rec = postPathForm(t, h.Delete, "/logs/"+log.ID+"/delete", log.ID, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for already-deleted record, got %d", rec.Code)
	}
}
