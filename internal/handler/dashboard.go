package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hourlog/timesheet/internal/model"
	"github.com/hourlog/timesheet/internal/service"
	"github.com/hourlog/timesheet/internal/ui"
	"github.com/hourlog/timesheet/internal/ui/pages"
)

type DashboardHandler struct {
	timerService *service.TimerService
	logService   *service.LogService
}

func NewDashboardHandler(timerService *service.TimerService, logService *service.LogService) *DashboardHandler {
	return &DashboardHandler{
		timerService: timerService,
		logService:   logService,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	active, err := h.timerService.Active()
	if err != nil {
		slog.Error("failed to load active timer", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	logs, err := h.logService.CompletedInMonth(now.Format(model.MonthFormat))
	if err != nil {
		slog.Error("failed to load month logs", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Dashboard(active, logs, now.Format(model.DateFormat)))
}

func (h *DashboardHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, pages.NotFound())
}
