package routes

import (
	"io/fs"
	"net/http"

	"github.com/hourlog/timesheet/assets"
	"github.com/hourlog/timesheet/internal/app"
	"github.com/hourlog/timesheet/internal/handler"
	"github.com/hourlog/timesheet/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	dashboard := handler.NewDashboardHandler(app.TimerService, app.LogService)
	timer := handler.NewTimerHandler(app.TimerService)
	log := handler.NewLogHandler(app.LogService)
	report := handler.NewReportHandler(app.ReportService)
	export := handler.NewExportHandler(app.ExportService)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// Dashboard
	mux.HandleFunc("GET /{$}", dashboard.DashboardPage)

	// Timer
	mux.HandleFunc("POST /start", timer.Start)
	mux.HandleFunc("POST /stop", timer.Stop)

	// Log entries
	mux.HandleFunc("GET /logs/{id}/edit", log.EditPage)
	mux.HandleFunc("POST /logs/{id}/edit", log.SubmitEdit)
	mux.HandleFunc("POST /logs/{id}/delete", log.Delete)

	// Report + export
	mux.HandleFunc("GET /report", report.ReportPage)
	mux.HandleFunc("GET /export/csv", export.CSV)

	// 404
	mux.HandleFunc("/{path...}", dashboard.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.WithURLPath,
	)

	return handler
}
