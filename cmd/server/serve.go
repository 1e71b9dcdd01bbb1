package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "esgtracker/internal/adapters/http"
	"esgtracker/internal/adapters/kafka"
	"esgtracker/internal/adapters/s3archive"
	"esgtracker/internal/ports"
	assesssvc "esgtracker/internal/services/assessments"
	authsvc "esgtracker/internal/services/auth"
	compsvc "esgtracker/internal/services/companies"
	reportsvc "esgtracker/internal/services/reports"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if cfg.AutoMigrate {
			if err := db.Migrate(ctx, "up"); err != nil {
				return err
			}
		}

		catalog, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load criteria: %w", err)
		}

		var events ports.EventPublisher
		if len(cfg.KafkaBrokers) > 0 {
			pub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
			defer pub.Close()
			events = pub
			log.Printf("publishing assessment events to %s", cfg.KafkaTopic)
		}

		var archive ports.ReportArchive
		if cfg.ReportsBucket != "" {
			a, err := s3archive.New(ctx, cfg.ReportsBucket, cfg.ReportsQueue)
			if err != nil {
				return err
			}
			archive = a
			log.Printf("archiving reports to s3://%s", cfg.ReportsBucket)
		}

		if cfg.SessionSecret == "" {
			if cfg.RequireSession {
				return errors.New("REQUIRE_SESSION needs SESSION_SECRET")
			}
			log.Printf("warning: SESSION_SECRET not set, no session tokens will be issued")
		}

		srv := httpadapter.New(
			authsvc.New(db, cfg.SessionSecret, cfg.SessionTTL),
			assesssvc.New(db, catalog, events),
			compsvc.New(db),
			reportsvc.New(db, db, catalog, archive),
			catalog,
			db,
			httpadapter.Options{RequireSession: cfg.RequireSession, CORSOrigins: cfg.CORSOrigins},
		)
		httpSrv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           srv.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Printf("listening on %s (%s)", cfg.ListenAddr, cfg.Env)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Printf("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}
