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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/cancel_appointment"
	checkClosureHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/check_closure"
	createAppointmentHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_appointment"
	createClosureHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/create_closure"
	deleteClosureHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/delete_closure"
	getAppointmentHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_business_hours"
	getClosureHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_closure"
	getStaffAppointmentsHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/get_staff_appointments"
	listClosuresHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/list_closures"
	updateBusinessHoursHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_business_hours"
	updateClosureHandler "github.com/m04kA/SMC-BarbershopService/internal/api/handlers/update_closure"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/config"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	closureCache "github.com/m04kA/SMC-BarbershopService/internal/infra/cache/closures"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	businessHoursRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/businesshours"
	closureRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/closure"
	appointmentsService "github.com/m04kA/SMC-BarbershopService/internal/service/appointments"
	businessHoursService "github.com/m04kA/SMC-BarbershopService/internal/service/businesshours"
	closuresService "github.com/m04kA/SMC-BarbershopService/internal/service/closures"
	checkClosureUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/check_closure"
	createAppointmentUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/logger"
	"github.com/m04kA/SMC-BarbershopService/pkg/metrics"
	"github.com/m04kA/SMC-BarbershopService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-BarbershopService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики. При выключенных метриках nil-коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis для кеша закрытий (опционально)
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кеш не обязателен: при недоступном Redis чтения идут в БД
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Connected to Redis at %s (ttl=%ds)", cfg.Redis.Address, cfg.Redis.TTL)
		}
		cancelPing()
	} else {
		log.Info("Redis address is empty, closure cache disabled")
	}

	// Правила записи
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	policy := domain.BookingPolicy{
		MinNoticeMinutes:   cfg.Booking.MinNoticeMinutes,
		AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
		Location:           location,
	}
	log.Info("Booking policy: min_notice=%dm, advance_days=%d, timezone=%s",
		policy.MinNoticeMinutes, policy.AdvanceBookingDays, location)

	// Инициализируем репозитории
	hoursRepository := businessHoursRepo.NewRepository(wrappedDB)
	closureRepository := closureRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)

	closures := closureCache.NewCache(
		closureRepository,
		redisClient,
		time.Duration(cfg.Redis.TTL)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)
	businessHoursSvc := businessHoursService.NewService(hoursRepository, txMgr, log)
	closuresSvc := closuresService.NewService(closureRepository, closures, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		hoursRepository,
		closures,
		appointmentRepository,
		policy,
		metricsCollector,
		log,
	)

	// Внутри сериализуемой транзакции закрытия читаются из БД, а не из кеша
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		hoursRepository,
		closureRepository,
		txMgr,
		policy,
		metricsCollector,
		log,
	)

	checkClosureUseCase := checkClosureUC.NewUseCase(hoursRepository, closures, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getStaffAppointments := getStaffAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(businessHoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(businessHoursSvc, log)
	checkClosure := checkClosureHandler.NewHandler(checkClosureUseCase, log)
	listClosures := listClosuresHandler.NewHandler(closuresSvc, log)
	createClosure := createClosureHandler.NewHandler(closuresSvc, log)
	getClosure := getClosureHandler.NewHandler(closuresSvc, log)
	updateClosure := updateClosureHandler.NewHandler(closuresSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(closuresSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Слоты и записи ---
	api.HandleFunc("/staff/{staffId:[0-9]+}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:[0-9]+}/appointments", getStaffAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Расписание салона ---
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)

	// --- Закрытия ---
	api.HandleFunc("/closures/status", checkClosure.Handle).Methods(http.MethodGet)
	api.HandleFunc("/closures", listClosures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/closures", createClosure.Handle).Methods(http.MethodPost)
	api.HandleFunc("/closures/{closureId:[0-9]+}", getClosure.Handle).Methods(http.MethodGet)
	api.HandleFunc("/closures/{closureId:[0-9]+}", updateClosure.Handle).Methods(http.MethodPut)
	api.HandleFunc("/closures/{closureId:[0-9]+}", deleteClosure.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	close(stopMetricsCh)

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
