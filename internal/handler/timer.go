package handler

import (
	"log/slog"
	"net/http"

	"github.com/hourlog/timesheet/internal/repository"
	"github.com/hourlog/timesheet/internal/service"
	"github.com/hourlog/timesheet/internal/validation"
)

type TimerHandler struct {
	timerService *service.TimerService
}

func NewTimerHandler(timerService *service.TimerService) *TimerHandler {
	return &TimerHandler{
		timerService: timerService,
	}
}

// Start creates a running record. A start while another timer is active
// is dropped silently; the user just lands back on the dashboard.
func (h *TimerHandler) Start(w http.ResponseWriter, r *http.Request) {
	client := r.FormValue("client")
	task := r.FormValue("task")

	if validation.ValidateLabel(client) != nil || validation.ValidateLabel(task) != nil {
		http.Error(w, "client and task are required", http.StatusBadRequest)
		return
	}

	_, err := h.timerService.Start(client, task)
	if err != nil && err != repository.ErrTimerRunning {
		slog.Error("failed to start timer", "error", err, "client", client, "task", task)
		http.Error(w, "Failed to start timer", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Stop completes the record and computes hours. A missing id is a
// no-op redirect.
func (h *TimerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("log_id")
	details := r.FormValue("details")

	_, err := h.timerService.Stop(id, details)
	if err != nil && err != repository.ErrLogNotFound {
		slog.Error("failed to stop timer", "error", err, "log_id", id)
		http.Error(w, "Failed to stop timer", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
