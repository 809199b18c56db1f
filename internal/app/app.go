package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hourlog/timesheet/internal/config"
	"github.com/hourlog/timesheet/internal/db"
	"github.com/hourlog/timesheet/internal/repository"
	"github.com/hourlog/timesheet/internal/service"
)

type App struct {
	Cfg           *config.Config
	DB            *sqlx.DB
	TimerService  *service.TimerService
	LogService    *service.LogService
	ReportService *service.ReportService
	ExportService *service.ExportService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	logRepository := repository.NewLogRepository(database)

	// Services
	timerService := service.NewTimerService(logRepository)
	logService := service.NewLogService(logRepository)
	reportService := service.NewReportService(logRepository)
	exportService := service.NewExportService(logRepository)

	return &App{
		Cfg:           cfg,
		DB:            database,
		TimerService:  timerService,
		LogService:    logService,
		ReportService: reportService,
		ExportService: exportService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
