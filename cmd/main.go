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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blocksHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/blocks"
	cancelBookingHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/create_booking"
	dayQuotaHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/day_quota"
	getAvailabilityHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/get_availability"
	getBookingHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/get_booking"
	getFleetHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/get_fleet"
	getPlanningHandler "github.com/kalicatt/boat-booking-saas-sub003/internal/api/handlers/get_planning"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/api/middleware"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/config"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/notify"
	blockRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/block"
	boatRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/boat"
	bookingRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/booking"
	quotaRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/quota"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/jobs"
	bookingsService "github.com/kalicatt/boat-booking-saas-sub003/internal/service/bookings"
	fleetService "github.com/kalicatt/boat-booking-saas-sub003/internal/service/fleet"
	scheduleService "github.com/kalicatt/boat-booking-saas-sub003/internal/service/schedule"
	createBookingUC "github.com/kalicatt/boat-booking-saas-sub003/internal/usecase/create_booking"
	getAvailabilityUC "github.com/kalicatt/boat-booking-saas-sub003/internal/usecase/get_availability"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/dbmetrics"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/logger"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/simpletxmanager"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/txmanager"
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

	log.Info("Starting boat-booking service...")

	// Местная зона бизнеса для проверки времени до отправления
	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (если включен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()
		defer redisClient.Close()
		log.Info("Successfully connected to redis (%s)", cfg.Redis.Addr)
	} else {
		log.Warn("Redis disabled, falling back to in-memory cache only")
	}

	// Кеш: Redis как первый уровень, память как fallback
	var primaryCache cache.Store
	if redisClient != nil {
		primaryCache = cache.NewRedis(redisClient)
	}
	layeredCache := cache.NewLayered(primaryCache, cache.NewMemory(), metricsCollector)

	// Сигнал планингу об изменениях расписания
	planningNotifier := notify.NewPlanningNotifier(redisClient, log)

	// Расписание отправлений
	schedule := domain.DefaultSchedule()

	// Инициализируем репозитории и менеджер транзакций (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		boatRepository    *boatRepo.Repository
		blockRepository   *blockRepo.Repository
		quotaRepository   *quotaRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		boatRepository = boatRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		quotaRepository = quotaRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		boatRepository = boatRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		quotaRepository = quotaRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	fleetSvc := fleetService.NewService(
		boatRepository,
		quotaRepository,
		layeredCache,
		time.Duration(cfg.Business.BoatsTTLSeconds)*time.Second,
		schedule,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		layeredCache,
		planningNotifier,
		metricsCollector,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		blockRepository,
		layeredCache,
		planningNotifier,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fleetSvc,
		layeredCache,
		time.Duration(cfg.Business.AvailabilityTTLSeconds)*time.Second,
		schedule,
		location,
		metricsCollector,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		blockRepository,
		fleetSvc,
		txMgr,
		layeredCache,
		planningNotifier,
		schedule,
		location,
		metricsCollector,
		log,
	)

	// Фоновая задача снятия просроченных холдов
	holdExpirer := jobs.NewHoldExpirer(
		bookingRepository,
		layeredCache,
		planningNotifier,
		time.Duration(cfg.Business.HoldTTLMinutes)*time.Minute,
		metricsCollector,
		log,
	)
	if err := holdExpirer.Start(cfg.Jobs.HoldExpirySchedule); err != nil {
		log.Fatal("Failed to start hold expirer: %v", err)
	}

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getPlanning := getPlanningHandler.NewHandler(bookingsSvc, log)
	getFleet := getFleetHandler.NewHandler(fleetSvc, log)
	dayQuota := dayQuotaHandler.NewHandler(fleetSvc, log)
	blocks := blocksHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на день
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Бронирование по публичной ссылке
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	// Планинг дня для операторов
	admin.HandleFunc("/planning", getPlanning.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	admin.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Флот
	admin.HandleFunc("/fleet", getFleet.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/fleet/{id}/status", getFleet.HandleUpdateStatus).Methods(http.MethodPut)

	// Дневные квоты лодок
	admin.HandleFunc("/quotas/{date}", dayQuota.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/quotas/{date}", dayQuota.HandleSet).Methods(http.MethodPut)
	admin.HandleFunc("/quotas/{date}", dayQuota.HandleDelete).Methods(http.MethodDelete)

	// Блокировки расписания
	admin.HandleFunc("/blocks", blocks.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blocks", blocks.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/blocks/{id}", blocks.HandleDelete).Methods(http.MethodDelete)

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

	holdExpirer.Stop()

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
