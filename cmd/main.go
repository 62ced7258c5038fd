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

	cancelBookingHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/create_booking"
	createVehicleHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/create_vehicle"
	deleteVehicleHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/delete_vehicle"
	getBookingHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/get_booking"
	getHostVehiclesHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/get_host_vehicles"
	getUnavailableDatesHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/get_unavailable_dates"
	getUserBookingsHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/get_user_bookings"
	getVehicleHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/get_vehicle"
	getVehicleBookingsHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/get_vehicle_bookings"
	searchVehiclesHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/search_vehicles"
	updateBookingStatusHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/update_booking_status"
	updateVehicleAvailabilityHandler "github.com/voom-app/VOOM-RentalService/internal/api/handlers/update_vehicle_availability"
	"github.com/voom-app/VOOM-RentalService/internal/api/middleware"
	"github.com/voom-app/VOOM-RentalService/internal/config"
	searchCache "github.com/voom-app/VOOM-RentalService/internal/infra/cache/search"
	bookingRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/booking"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	bookingsService "github.com/voom-app/VOOM-RentalService/internal/service/bookings"
	vehiclesService "github.com/voom-app/VOOM-RentalService/internal/service/vehicles"
	createBookingUC "github.com/voom-app/VOOM-RentalService/internal/usecase/create_booking"
	getUnavailableDatesUC "github.com/voom-app/VOOM-RentalService/internal/usecase/get_unavailable_dates"
	searchVehiclesUC "github.com/voom-app/VOOM-RentalService/internal/usecase/search_vehicles"
	"github.com/voom-app/VOOM-RentalService/pkg/dbmetrics"
	"github.com/voom-app/VOOM-RentalService/pkg/logger"
	"github.com/voom-app/VOOM-RentalService/pkg/metrics"
	"github.com/voom-app/VOOM-RentalService/pkg/simpletxmanager"
	"github.com/voom-app/VOOM-RentalService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting VOOM-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Подключаемся к Redis (кэш поиска)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Кэш не критичен для работы сервиса: поиск умеет ходить напрямую в БД
		log.Warn("Failed to ping redis at %s: %v (search cache degraded)", cfg.Redis.Addr, err)
	} else {
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}

	cache := searchCache.NewCache(
		rdb,
		time.Duration(cfg.Redis.ResultsTTL)*time.Second,
		time.Duration(cfg.Redis.LastFilterTTL)*time.Second,
	)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		vehicleRepository *vehicleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		vehicleRepository,
		log,
	)
	vehicleSvc := vehiclesService.NewService(
		vehicleRepository,
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		txMgr,
		log,
	)

	getUnavailableDatesUseCase := getUnavailableDatesUC.NewUseCase(
		bookingRepository,
		vehicleRepository,
		log,
	)

	searchVehiclesUseCase := searchVehiclesUC.NewUseCase(
		vehicleRepository,
		cache,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUnavailableDates := getUnavailableDatesHandler.NewHandler(getUnavailableDatesUseCase, log)
	searchVehicles := searchVehiclesHandler.NewHandler(searchVehiclesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getVehicleBookings := getVehicleBookingsHandler.NewHandler(bookingSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	getHostVehicles := getHostVehiclesHandler.NewHandler(vehicleSvc, log)
	updateVehicleAvailability := updateVehicleAvailabilityHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск по каталогу автомобилей
	api.HandleFunc("/vehicles", searchVehicles.Handle).Methods(http.MethodGet)

	// Карточка автомобиля
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)

	// Недоступные даты автомобиля (календарь бронирования)
	api.HandleFunc("/vehicles/{vehicleId}/unavailable-dates",
		getUnavailableDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевод аренды в следующий статус (выдача/возврат автомобиля)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление автомобилями (для владельцев) ---
	// Бронирования автомобиля
	protected.HandleFunc("/vehicles/{vehicleId}/bookings", getVehicleBookings.Handle).Methods(http.MethodGet)

	// Создание объявления
	protected.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)

	// Объявления владельца
	protected.HandleFunc("/users/{userId}/vehicles", getHostVehicles.Handle).Methods(http.MethodGet)

	// Включение/выключение объявления
	protected.HandleFunc("/vehicles/{vehicleId}/availability",
		updateVehicleAvailability.Handle).Methods(http.MethodPatch)

	// Удаление объявления
	protected.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
