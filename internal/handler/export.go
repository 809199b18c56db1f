package handler

import (
	"log/slog"
	"net/http"

	"github.com/hourlog/timesheet/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// CSV streams the current month's completed entries as a download.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.exportService.MonthCSV("")
	if err != nil {
		slog.Error("failed to export csv", "error", err)
		http.Error(w, "Failed to export CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	_, err = w.Write(data)
	if err != nil {
		slog.Error("failed to write csv response", "error", err)
	}
}
