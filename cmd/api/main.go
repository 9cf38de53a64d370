package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"financehub/internal/config"
	"financehub/internal/database"
	"financehub/internal/logger"
	"financehub/internal/scheduler"
	"financehub/internal/server"
	"financehub/internal/services"
	"financehub/internal/store"
	"financehub/internal/validator"
)

// @title           FinanceHub API
// @version         1.0
// @description     FinanceHub tracks household transactions, bank balances, income, fixed expenses, investments and insurance, and derives dashboards, budgets and reports from them.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		logger.Init(os.Getenv("ENV"), "")
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the record collections
	db := dbManager.DB()
	ledger := services.NewLedger(store.New(db), appConfig.SeedDefaults)
	if err := ledger.Load(ctx); err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	svc := server.NewServices(db, ledger)
	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           server.NewRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var jobs *scheduler.Scheduler
	if appConfig.SnapshotCron != "" {
		jobs, err = scheduler.New(appConfig.SnapshotCron, svc.Snapshots)
		if err != nil {
			return err
		}
		jobs.Start()
		log.Infof("Summary snapshots scheduled at %q", appConfig.SnapshotCron)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting FinanceHub server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if jobs != nil {
			select {
			case <-jobs.Stop().Done():
			case <-shutdownCtx.Done():
			}
		}
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
