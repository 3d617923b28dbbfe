// Command bizhubctl runs schema migrations and operational tasks against the bizhub database.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erp/bizhub/internal/infrastructure/config"
	"github.com/erp/bizhub/internal/infrastructure/logger"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

const defaultMigrationsPath = "migrations"

// cli carries the state shared by every subcommand
type cli struct {
	migrationsPath string
	logLevel       string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "bizhubctl",
		Short:         "Operate the bizhub database",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.migrationsPath, "path", defaultMigrationsPath, "path to the migrations directory")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newMigrateCmd(c), newSeedCmd(c))
	return root
}

func (c *cli) init() error {
	log, err := logger.New(&logger.Config{
		Level:      c.logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.log = log

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	abs, err := filepath.Abs(c.migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	c.migrationsPath = abs
	return nil
}

// openSQL opens a lib/pq connection for golang-migrate
func (c *cli) openSQL() (*sql.DB, error) {
	db, err := sql.Open("postgres", c.cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
