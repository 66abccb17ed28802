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

	createBookingHandler "github.com/careslot/booking-service/internal/api/handlers/create_booking"
	createRecurringBookingHandler "github.com/careslot/booking-service/internal/api/handlers/create_recurring_booking"
	getAvailableSlotsHandler "github.com/careslot/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/careslot/booking-service/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/careslot/booking-service/internal/api/handlers/get_client_bookings"
	getProviderBookingsHandler "github.com/careslot/booking-service/internal/api/handlers/get_provider_bookings"
	getProviderPolicyHandler "github.com/careslot/booking-service/internal/api/handlers/get_provider_policy"
	transitionBookingHandler "github.com/careslot/booking-service/internal/api/handlers/transition_booking"
	updateProviderPolicyHandler "github.com/careslot/booking-service/internal/api/handlers/update_provider_policy"
	"github.com/careslot/booking-service/internal/api/middleware"
	"github.com/careslot/booking-service/internal/config"
	bookingRepo "github.com/careslot/booking-service/internal/infra/storage/booking"
	policyRepo "github.com/careslot/booking-service/internal/infra/storage/policy"
	providerServiceClient "github.com/careslot/booking-service/internal/integrations/providerservice"
	bookingsService "github.com/careslot/booking-service/internal/service/bookings"
	policyService "github.com/careslot/booking-service/internal/service/policy"
	createBookingUC "github.com/careslot/booking-service/internal/usecase/create_booking"
	createRecurringBookingUC "github.com/careslot/booking-service/internal/usecase/create_recurring_booking"
	getAvailableSlotsUC "github.com/careslot/booking-service/internal/usecase/get_available_slots"
	"github.com/careslot/booking-service/pkg/dbmetrics"
	"github.com/careslot/booking-service/pkg/logger"
	"github.com/careslot/booking-service/pkg/metrics"
	"github.com/careslot/booking-service/pkg/simpletxmanager"
	"github.com/careslot/booking-service/pkg/txmanager"
)

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

	log.Info("Starting careslot booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	providerClient := providerServiceClient.NewClient(
		cfg.ProviderService.URL,
		time.Duration(cfg.ProviderService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProviderService=%s timeout=%ds)",
		cfg.ProviderService.URL, cfg.ProviderService.Timeout)

	var (
		bookingRepository *bookingRepo.Repository
		policyRepository  *policyRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		providerClient,
		log,
	)
	policySvc := policyService.NewService(
		policyRepository,
		providerClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		policyRepository,
		providerClient,
		txMgr,
		log,
	)
	createRecurringBookingUseCase := createRecurringBookingUC.NewUseCase(
		createBookingUseCase,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		policyRepository,
		providerClient,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createRecurringBooking := createRecurringBookingHandler.NewHandler(createRecurringBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	getProviderPolicy := getProviderPolicyHandler.NewHandler(policySvc, log)
	updateProviderPolicy := updateProviderPolicyHandler.NewHandler(policySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Availability calendar for a provider
	api.HandleFunc("/providers/{providerId}/availability",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Booking policy of a provider
	api.HandleFunc("/providers/{providerId}/policy",
		getProviderPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/recurring", createRecurringBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Lifecycle transitions
	protected.HandleFunc("/bookings/{bookingId}/confirm", transitionBooking.Confirm).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/decline", transitionBooking.Decline).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", transitionBooking.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/complete", transitionBooking.Complete).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/no-show", transitionBooking.NoShow).Methods(http.MethodPost)

	// Booking history of a client
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Provider management (staff) ---
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/policy", updateProviderPolicy.Handle).Methods(http.MethodPut)

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
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
