package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "modernc.org/sqlite"

	createAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_appointment"
	deleteAvailabilityHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/delete_availability"
	getAppointmentHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_appointment"
	getDashboardStatsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_dashboard_stats"
	getAvailableSlotsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	healthHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_appointments"
	listAvailabilityHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_availability"
	listBarbersHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_barbers"
	listServicesHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/list_services"
	updateAppointmentStatusHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_appointment_status"
	upsertAvailabilityHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/upsert_availability"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/catalog"
	"github.com/m04kA/barbershop-booking/internal/config"
	"github.com/m04kA/barbershop-booking/internal/domain"
	adminRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/admin"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/internal/infra/storage/sqliteschema"
	"github.com/m04kA/barbershop-booking/internal/integrations/notifier"
	appointmentsService "github.com/m04kA/barbershop-booking/internal/service/appointments"
	availabilityService "github.com/m04kA/barbershop-booking/internal/service/availability"
	barbersService "github.com/m04kA/barbershop-booking/internal/service/barbers"
	createAppointmentUC "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/clock"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
	"github.com/m04kA/barbershop-booking/pkg/ratelimit"
	"github.com/m04kA/barbershop-booking/pkg/tracing"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
)

const poolStatsInterval = 15 * time.Second

// bookingNotifier диспетчер уведомлений или заглушка, если транспорты не настроены
type bookingNotifier interface {
	NotifyBooking(ctx context.Context, a *domain.Appointment, barberName, serviceName string) error
	Close(ctx context.Context) error
}

func main() {
	defaultConfig := "config.toml"
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		defaultConfig = env
	}
	configPath := flag.String("config", defaultConfig, "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting barbershop-booking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Метрики (nil, если выключены: методы Metrics это допускают)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Трассировка
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.OTLPEndpoint)
	}

	// Подключаемся к базе данных
	queryBuilder := psqlbuilder.New(cfg.Database.Driver)

	rawDB, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer rawDB.Close()

	// Настраиваем connection pool
	if cfg.Database.Driver == psqlbuilder.DriverSQLite {
		// SQLite пишет одним соединением
		rawDB.SetMaxOpenConns(1)
	} else {
		rawDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		rawDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		rawDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	}

	// Проверяем соединение
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = rawDB.PingContext(pingCtx)
	pingCancel()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	if cfg.Database.Driver == psqlbuilder.DriverSQLite {
		if err := sqliteschema.Apply(context.Background(), rawDB); err != nil {
			log.Fatal("Failed to prepare sqlite schema: %v", err)
		}
		log.Info("Using sqlite database at %s", cfg.Database.Path)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	db := dbmetrics.Wrap(rawDB, metricsCollector)
	stopMetricsCh := make(chan struct{})
	db.CollectPoolStats(poolStatsInterval, stopMetricsCh)

	var txOpts []txmanager.Option
	if cfg.Database.Driver == psqlbuilder.DriverSQLite {
		txOpts = append(txOpts, txmanager.WithDefaultIsolationOnly())
	}
	txMgr := txmanager.NewTransactionManager(db, txOpts...)

	// Часовой пояс салона: "сегодня" и "прошедшие" слоты считаются в нём
	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	timeProvider := clock.NewLocal(loc)

	// Каталог услуг
	services, err := catalog.Load(cfg.Catalog.Path, log)
	if err != nil {
		log.Fatal("Failed to load services catalog: %v", err)
	}
	log.Info("Services catalog loaded from %s: %d active services", cfg.Catalog.Path, len(services.List(nil)))

	// Уведомления о бронировании
	notifyTimeout := time.Duration(cfg.Notifier.Timeout) * time.Second

	var (
		senders        []notifier.Sender
		kafkaPublisher *notifier.KafkaPublisher
	)
	if cfg.Notifier.FunctionURL != "" {
		senders = append(senders, notifier.NewFunctionClient(
			cfg.Notifier.FunctionURL,
			cfg.Notifier.FunctionKey,
			notifyTimeout,
			otelhttp.NewTransport(http.DefaultTransport),
		))
		log.Info("Booking notifications via function %s", cfg.Notifier.FunctionURL)
	}
	if len(cfg.Notifier.KafkaBrokers) > 0 {
		kafkaPublisher = notifier.NewKafkaPublisher(notifier.NewKafkaWriter(cfg.Notifier.KafkaBrokers), cfg.Notifier.KafkaTopic)
		senders = append(senders, kafkaPublisher)
		log.Info("Booking events published to kafka topic %s (brokers=%v)", cfg.Notifier.KafkaTopic, cfg.Notifier.KafkaBrokers)
	}

	var bookingNotifications bookingNotifier = notifier.Noop{}
	if len(senders) > 0 {
		bookingNotifications = notifier.NewDispatcher(senders, notifyTimeout, cfg.Notifier.DispatchBuffer, log, metricsCollector)
	} else {
		log.Warn("No notification transport configured, booking notifications are disabled")
	}

	// Health checks
	health := healthHandler.NewHandler(log)
	health.Register("database", db)

	// Rate limiting бронирований
	var (
		rdb     *redis.Client
		limiter *ratelimit.Limiter
	)
	if cfg.RateLimit.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RateLimit.RedisAddr,
			Password: cfg.RateLimit.RedisPassword,
			DB:       cfg.RateLimit.RedisDB,
		})
		limiter = ratelimit.New(
			ratelimit.NewRedisCounter(rdb),
			ratelimit.Config{
				Limit:    cfg.RateLimit.Limit,
				Window:   time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
				Prefix:   "barbershop",
				FailOpen: cfg.RateLimit.FailOpen,
			},
			log,
			metricsCollector,
		)
		health.Register("redis", healthHandler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
		log.Info("Rate limiting enabled: %d requests per %ds (redis=%s)",
			cfg.RateLimit.Limit, cfg.RateLimit.WindowSeconds, cfg.RateLimit.RedisAddr)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db, queryBuilder)
	availabilityRepository := availabilityRepo.NewRepository(db, queryBuilder)
	barberRepository := barberRepo.NewRepository(db, queryBuilder)
	adminRepository := adminRepo.NewRepository(db, queryBuilder)

	// Инициализируем сервисы
	barbersSvc := barbersService.NewService(barberRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		barberRepository,
		availabilityRepository,
		txMgr,
		timeProvider,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		barberRepository,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		barberRepository,
		services,
		bookingNotifications,
		metricsCollector,
		txMgr,
		timeProvider,
		log,
		cfg.Booking.DefaultCountryPrefix,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		appointmentRepository,
		barberRepository,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	listBarbers := listBarbersHandler.NewHandler(barbersSvc, log)
	listServices := listServicesHandler.NewHandler(services, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	upsertAvailability := upsertAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт салона)
	// ============================================================

	api.HandleFunc("/barbers", listBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/barbers/{barberId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	var createAppointmentRoute http.Handler = http.HandlerFunc(createAppointment.Handle)
	if limiter != nil {
		createAppointmentRoute = limiter.Middleware("/appointments")(createAppointmentRoute)
	}
	api.Handle("/appointments", createAppointmentRoute).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (X-User-ID активного администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin(adminRepository, log))

	// --- Записи ---
	admin.HandleFunc("/stats", getDashboardStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Окна доступности барберов ---
	admin.HandleFunc("/barbers/{barberId}/availability", listAvailability.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/barbers/{barberId}/availability", upsertAvailability.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/{availabilityId}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Metrics.ServiceName),
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

	// Ожидаем сигнал завершения
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

	// Дожидаемся уведомлений, уже поставленных в отправку
	if err := bookingNotifications.Close(shutdownCtx); err != nil {
		log.Error("Notification dispatcher did not drain: %v", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error("Failed to close kafka writer: %v", err)
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
