package handler

import (
	"log/slog"
	"net/http"

	"github.com/hourlog/timesheet/internal/service"
	"github.com/hourlog/timesheet/internal/ui"
	"github.com/hourlog/timesheet/internal/ui/pages"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ReportPage renders the client/task summary. Missing bounds default
// to the current calendar month.
func (h *ReportHandler) ReportPage(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	report, err := h.reportService.Report(startDate, endDate)
	if err != nil {
		slog.Error("failed to build report", "error", err, "start_date", startDate, "end_date", endDate)
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Report(report))
}
