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

	cancelBookingHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/cancel_booking"
	changeStatusHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/change_status"
	createBookingHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/create_booking"
	createReservationHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/create_reservation"
	createScheduleHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/create_schedule"
	createServiceHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/create_service"
	getBookingHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_booking"
	getBookingPaymentsHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_booking_payments"
	getQuestHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_quest"
	getRoomHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_room_availability"
	getScheduleHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/get_service"
	recordPaymentHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/record_payment"
	updateServiceHandler "github.com/blackrooms/BR-ReservationService/internal/api/handlers/update_service"
	"github.com/blackrooms/BR-ReservationService/internal/api/middleware"
	"github.com/blackrooms/BR-ReservationService/internal/config"
	"github.com/blackrooms/BR-ReservationService/internal/events"
	bookingRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/booking"
	catalogRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/catalog"
	extraServiceRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/extraservice"
	paymentRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/payment"
	scheduleRepo "github.com/blackrooms/BR-ReservationService/internal/infra/storage/schedule"
	bookingsService "github.com/blackrooms/BR-ReservationService/internal/service/bookings"
	catalogService "github.com/blackrooms/BR-ReservationService/internal/service/catalog"
	extraServicesService "github.com/blackrooms/BR-ReservationService/internal/service/extraservices"
	paymentsService "github.com/blackrooms/BR-ReservationService/internal/service/payments"
	allocateReservationUC "github.com/blackrooms/BR-ReservationService/internal/usecase/allocate_reservation"
	createBookingUC "github.com/blackrooms/BR-ReservationService/internal/usecase/create_booking"
	createScheduleUC "github.com/blackrooms/BR-ReservationService/internal/usecase/create_schedule"
	getRoomAvailabilityUC "github.com/blackrooms/BR-ReservationService/internal/usecase/get_room_availability"
	"github.com/blackrooms/BR-ReservationService/pkg/dbmetrics"
	"github.com/blackrooms/BR-ReservationService/pkg/logger"
	"github.com/blackrooms/BR-ReservationService/pkg/metrics"
	"github.com/blackrooms/BR-ReservationService/pkg/simpletxmanager"
	"github.com/blackrooms/BR-ReservationService/pkg/txmanager"
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

	log.Info("Starting BR-ReservationService...")
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

	// Подключаемся к redis для кеша каталога
	// Недоступный redis не мешает старту: каталог читается напрямую из БД
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable, catalog cache disabled: %v", err)
			redisClient = nil
		} else {
			log.Info("Catalog cache connected (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
		cancel()
	}

	// Публикация событий бронирования (fire-and-forget)
	var publisherURL string
	if cfg.RabbitMQ.Enabled {
		publisherURL = cfg.RabbitMQ.URL
	}
	publisher := events.NewPublisher(publisherURL, log)
	if publisher.Enabled() {
		log.Info("Booking events publisher enabled (rabbitmq=%s)", cfg.RabbitMQ.URL)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		scheduleRepository     *scheduleRepo.Repository
		catalogRepository      *catalogRepo.Repository
		paymentRepository      *paymentRepo.Repository
		extraServiceRepository *extraServiceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		extraServiceRepository = extraServiceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		extraServiceRepository = extraServiceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		catalogRepository,
		redisClient,
		time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleRepository,
		txMgr,
		publisher,
		log,
	)
	paymentSvc := paymentsService.NewService(
		bookingRepository,
		paymentRepository,
		txMgr,
		publisher,
		log,
	)
	extraServiceSvc := extraServicesService.NewService(
		extraServiceRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	allocateReservationUseCase := allocateReservationUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		catalogSvc,
		txMgr,
		log,
	)
	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		catalogSvc,
		txMgr,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		catalogSvc,
		txMgr,
		log,
	)
	getRoomAvailabilityUseCase := getRoomAvailabilityUC.NewUseCase(
		scheduleRepository,
		catalogSvc,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(allocateReservationUseCase, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	changeStatus := changeStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleRepository, log)
	getBookingPayments := getBookingPaymentsHandler.NewHandler(paymentSvc, log)
	recordPayment := recordPaymentHandler.NewHandler(paymentSvc, log)
	createService := createServiceHandler.NewHandler(extraServiceSvc, log)
	updateService := updateServiceHandler.NewHandler(extraServiceSvc, log)
	getService := getServiceHandler.NewHandler(extraServiceSvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(getRoomAvailabilityUseCase, log)
	getRoom := getRoomHandler.NewHandler(catalogSvc, log)
	getQuest := getQuestHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	api.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// --- Атомарное выделение слота с бронированием ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", changeStatus.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/payments", getBookingPayments.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	api.HandleFunc("/payments", recordPayment.Handle).Methods(http.MethodPost)

	// --- Дополнительные услуги ---
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// --- Каталог и доступность ---
	api.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quests/{questId}", getQuest.Handle).Methods(http.MethodGet)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
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
