package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	pg "esgtracker/internal/adapters/postgres"
	"esgtracker/internal/adapters/sqlite"
	"esgtracker/internal/config"
	"esgtracker/internal/criteria"
	"esgtracker/internal/ports"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "esgtracker",
	Short: "ESG score tracking service",
	Long: `esgtracker registers companies, scores their environmental, social and
governance practices, keeps an assessment history and renders PDF reports.

Run "esgtracker serve" to start the HTTP API.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ./esgtracker.yaml if present)")
	rootCmd.AddCommand(serveCmd, migrateCmd, scoreCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if errors.Is(err, config.ErrNoDatabase) {
		log.Printf("warning: %v", err)
		return cfg, nil
	}
	return cfg, err
}

// database is the store plus schema control; both adapters satisfy it.
type database interface {
	ports.Store
	Migrate(ctx context.Context, command string) error
}

func openDatabase(ctx context.Context, cfg config.Config) (database, error) {
	if path, ok := cfg.SQLitePath(); ok {
		return sqlite.Open(ctx, path, cfg.StorageTimeout)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required (postgres URL or sqlite://path)")
	}
	return pg.Connect(ctx, cfg.DatabaseURL, cfg.StorageTimeout)
}

func loadCatalog(cfg config.Config) (*criteria.Catalog, error) {
	if cfg.CriteriaFile == "" {
		return criteria.Default()
	}
	return criteria.Load(cfg.CriteriaFile)
}
