package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hourlog/timesheet/internal/repository"
	"github.com/hourlog/timesheet/internal/service"
	"github.com/hourlog/timesheet/internal/ui"
	"github.com/hourlog/timesheet/internal/ui/pages"
)

type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

func (h *LogHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	log, err := h.logService.ByID(id)
	if err == repository.ErrLogNotFound {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to load log", "error", err, "log_id", id)
		http.Error(w, "Failed to load entry", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.EditLog(log))
}

// SubmitEdit applies a correction. An edit whose end time is not after
// its start time is discarded silently per the dashboard's error
// policy; malformed date or clock input fails the request.
func (h *LogHandler) SubmitEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	in := service.EditInput{
		LogDate:    r.FormValue("log_date"),
		Client:     r.FormValue("client"),
		Task:       r.FormValue("task"),
		Details:    r.FormValue("details"),
		StartClock: r.FormValue("start_time"),
		EndClock:   r.FormValue("end_time"),
	}

	err := h.logService.Edit(id, in)
	switch {
	case err == nil, errors.Is(err, service.ErrEndBeforeStart), errors.Is(err, repository.ErrLogNotFound):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case isParseError(err):
		http.Error(w, "Invalid date or time", http.StatusBadRequest)
	default:
		slog.Error("failed to edit log", "error", err, "log_id", id)
		http.Error(w, "Failed to update entry", http.StatusInternalServerError)
	}
}

func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.logService.Delete(id)
	if err != nil && err != repository.ErrLogNotFound {
		slog.Error("failed to delete log", "error", err, "log_id", id)
		http.Error(w, "Failed to delete entry", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func isParseError(err error) bool {
	var parseErr *time.ParseError
	return errors.As(err, &parseErr)
}
