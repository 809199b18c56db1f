package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hourlog/timesheet/cmd/timesheet/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Single-user timesheet tracker",
	}

	rootCmd.AddCommand(cmd.ServeCmd())
	rootCmd.AddCommand(cmd.ExportCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
