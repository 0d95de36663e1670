// Package cli holds the form-integrations command tree.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/TWRT/form-integrations/internal/api"
	"github.com/TWRT/form-integrations/internal/config"
	"github.com/TWRT/form-integrations/internal/logging"
	"github.com/TWRT/form-integrations/internal/metrics"
	"github.com/TWRT/form-integrations/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const serviceName = "form-integrations"

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   serviceName,
		Short: "Connect forms to AWeber mailing lists",
		Long: `form-integrations - connect forms to AWeber mailing lists

Runs the integration settings API and offers a few maintenance commands
for the AWeber accounts it stores.

Environment Variables:
  PORT                         HTTP port for serve (default: 8080)
  DB_PATH                      SQLite database file (default: ./integrations.db)
  LOG_LEVEL                    debug, info, warn or error (default: info)
  LOCALE                       Language for modal text (default: en)
  AWEBER_API_URL               AWeber API base URL
  AWEBER_HTTP_TIMEOUT_SECONDS  Timeout for AWeber requests (default: 10)
`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (built %s)\n", serviceName, BuildTag, BuildDate)
		},
	})
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newListsCommand())
	rootCmd.AddCommand(newAccountsCommand())

	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is what every command needs: configuration, logging, the database and the wired services.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	db       *sql.DB
	registry *prometheus.Registry
	services *api.Services
}

func newApp() (*app, error) {
	cfg := config.Load()
	logger := logging.NewLogger(serviceName, cfg.LogLevel)

	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewIntegrationMetrics(registry)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		registry: registry,
		services: api.NewServices(db, cfg, logger, m),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
