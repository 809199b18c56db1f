package cmd

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hourlog/timesheet/internal/app"
	"github.com/hourlog/timesheet/internal/config"
	"github.com/hourlog/timesheet/internal/logger"
	"github.com/hourlog/timesheet/internal/routes"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the timesheet web server",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()

			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			a, err := app.New(cfg)
			if err != nil {
				slog.Error("failed to initialize app", "error", err)
				return err
			}
			defer func() {
				closeErr := a.Close()
				if closeErr != nil {
					slog.Error("failed to close app", "error", closeErr)
				}
			}()

			server := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      routes.SetupRoutes(a),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}

			slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

			err = server.ListenAndServe()
			if err != nil {
				slog.Error("server failed", "error", err)
				return err
			}
			return nil
		},
	}
}
