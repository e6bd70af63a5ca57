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

	cancelReservationHandler "github.com/THETRIS2001/piedelpoggio/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/THETRIS2001/piedelpoggio/internal/api/handlers/create_reservation"
	getAvailableStartsHandler "github.com/THETRIS2001/piedelpoggio/internal/api/handlers/get_available_starts"
	listReservationsHandler "github.com/THETRIS2001/piedelpoggio/internal/api/handlers/list_reservations"
	"github.com/THETRIS2001/piedelpoggio/internal/api/middleware"
	"github.com/THETRIS2001/piedelpoggio/internal/config"
	reservationRepo "github.com/THETRIS2001/piedelpoggio/internal/infra/storage/reservation"
	resendClient "github.com/THETRIS2001/piedelpoggio/internal/integrations/resend"
	"github.com/THETRIS2001/piedelpoggio/internal/service/notifications"
	reservationsService "github.com/THETRIS2001/piedelpoggio/internal/service/reservations"
	createReservationUC "github.com/THETRIS2001/piedelpoggio/internal/usecase/create_reservation"
	getAvailableStartsUC "github.com/THETRIS2001/piedelpoggio/internal/usecase/get_available_starts"
	"github.com/THETRIS2001/piedelpoggio/pkg/logger"
	"github.com/THETRIS2001/piedelpoggio/pkg/metrics"
	"github.com/THETRIS2001/piedelpoggio/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting piedelpoggio booking service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Email client; an empty API key leaves notifications disabled
	emailClient := resendClient.NewClient(
		cfg.Resend.BaseURL,
		cfg.Resend.APIKey,
		cfg.Resend.From,
		cfg.Resend.To,
		time.Duration(cfg.Resend.Timeout)*time.Second,
		log,
	)
	if cfg.Resend.APIKey == "" {
		log.Info("Email notifications disabled (no API key configured)")
	} else {
		log.Info("Email notifications enabled (from=%s, recipients=%d)", cfg.Resend.From, len(cfg.Resend.To))
	}

	// Notification dispatcher, decoupled from the request path
	dispatcher := notifications.NewDispatcher(emailClient, log, 0, time.Duration(cfg.Resend.Timeout)*time.Second)
	dispatcher.Start()

	// Repositories and transaction manager
	repository := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	reservationsSvc := reservationsService.NewService(repository, dispatcher, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(repository, txMgr, dispatcher, log)
	getAvailableStartsUseCase := getAvailableStartsUC.NewUseCase(repository, log)

	// Handlers
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getAvailableStarts := getAvailableStartsHandler.NewHandler(getAvailableStartsUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/bookings", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", cancelReservation.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/available-starts", getAvailableStarts.Handle).Methods(http.MethodGet)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Drain pending notifications within the shutdown grace period
	if err := dispatcher.Close(shutdownCtx); err != nil {
		log.Warn("Notification dispatcher did not drain in time: %v", err)
	}

	log.Info("Server stopped gracefully")
}
