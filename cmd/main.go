package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createScheduleHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/create_schedule"
	deleteScheduleHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/delete_schedule"
	getAvailableSlotsHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/get_available_slots"
	getScheduleHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/get_schedule"
	healthHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/health"
	listSchedulesHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/list_schedules"
	updateScheduleHandler "github.com/tcsoares1914/test-gbi-backend/internal/api/handlers/update_schedule"
	"github.com/tcsoares1914/test-gbi-backend/internal/api/middleware"
	"github.com/tcsoares1914/test-gbi-backend/internal/config"
	scheduleRepo "github.com/tcsoares1914/test-gbi-backend/internal/infra/storage/schedule"
	schedulesService "github.com/tcsoares1914/test-gbi-backend/internal/service/schedules"
	createScheduleUC "github.com/tcsoares1914/test-gbi-backend/internal/usecase/create_schedule"
	getAvailableSlotsUC "github.com/tcsoares1914/test-gbi-backend/internal/usecase/get_available_slots"
	"github.com/tcsoares1914/test-gbi-backend/migrations"
	"github.com/tcsoares1914/test-gbi-backend/pkg/dbmetrics"
	"github.com/tcsoares1914/test-gbi-backend/pkg/logger"
	"github.com/tcsoares1914/test-gbi-backend/pkg/metrics"
	"github.com/tcsoares1914/test-gbi-backend/pkg/simpletxmanager"
	"github.com/tcsoares1914/test-gbi-backend/pkg/txmanager"
)

const serviceName = "API"

// version is overridable at build time with -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting carwash scheduling service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrations.Apply(migrateCtx, db); err != nil {
		cancelMigrate()
		log.Fatal("Failed to apply migrations: %v", err)
	}
	cancelMigrate()
	log.Info("Migrations applied")

	// Repository and transaction manager, with or without metrics.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		repository *scheduleRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		repository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		repository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	scheduleSvc := schedulesService.NewService(repository, log)
	createScheduleUseCase := createScheduleUC.NewUseCase(repository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, log)

	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)
	health := healthHandler.NewHandler(serviceName, version)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Fixed paths are registered before the {scheduleId} routes so that
	// "available-slots" never matches as an id.
	api.HandleFunc("/schedules/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPut)
	api.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
