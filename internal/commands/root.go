// Package commands wires the carrental command line: the API server, schema
// migration, demo seeding and reports.
package commands

import (
	"database/sql"
	"fmt"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/logger"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config/config.dev.yaml"

// NewRootCmd returns the carrental command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carrental",
		Short:         "Car rental backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", defaultConfigPath, "Path to configuration file (empty to use environment only)")

	root.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SeedCmd(),
		ReportCmd(),
	)
	return root
}

// setup loads configuration, starts logging and opens the database pool.
func setup(cmd *cobra.Command) (*config.Config, *sql.DB, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port,
		"database", cfg.Database.Database, "user", cfg.Database.User, "url_set", cfg.Database.URL != "")

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	if err := db.PingContext(cmd.Context()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info("Database connection established")
	return cfg, db, nil
}
