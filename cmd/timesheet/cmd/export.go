package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hourlog/timesheet/internal/app"
	"github.com/hourlog/timesheet/internal/config"
	"github.com/hourlog/timesheet/internal/logger"
)

// ExportCmd writes a month's CSV without running the server, to stdout
// or to the file named by --out.
func ExportCmd() *cobra.Command {
	var month string
	var out string

	c := &cobra.Command{
		Use:   "export",
		Short: "Export a month of completed entries as CSV",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.Load()

			logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

			a, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer a.Close()

			data, filename, err := a.ExportService.MonthCSV(month)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}

			err = os.WriteFile(out, data, 0644)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			slog.Info("export written", "file", out, "suggested_name", filename)
			return nil
		},
	}

	c.Flags().StringVar(&month, "month", "", "month to export as YYYY-MM (default: current month)")
	c.Flags().StringVar(&out, "out", "", "output file (default: stdout)")

	return c
}
