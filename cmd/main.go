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

	adminAppointmentsHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_appointments"
	adminClientsHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_clients"
	adminPromotionsHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_promotions"
	adminScheduleHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_schedule"
	adminServicesHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_services"
	adminSettingsHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_settings"
	adminTransactionsHandler "github.com/mundoinsolito/manicura/internal/api/handlers/admin_transactions"
	createAppointmentHandler "github.com/mundoinsolito/manicura/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/mundoinsolito/manicura/internal/api/handlers/get_available_slots"
	getClientStatusHandler "github.com/mundoinsolito/manicura/internal/api/handlers/get_client_status"
	siteHandler "github.com/mundoinsolito/manicura/internal/api/handlers/site"
	"github.com/mundoinsolito/manicura/internal/api/middleware"
	"github.com/mundoinsolito/manicura/internal/config"
	appointmentRepo "github.com/mundoinsolito/manicura/internal/infra/storage/appointment"
	blockedTimeRepo "github.com/mundoinsolito/manicura/internal/infra/storage/blockedtime"
	clientRepo "github.com/mundoinsolito/manicura/internal/infra/storage/client"
	customScheduleRepo "github.com/mundoinsolito/manicura/internal/infra/storage/customschedule"
	promotionRepo "github.com/mundoinsolito/manicura/internal/infra/storage/promotion"
	serviceRepo "github.com/mundoinsolito/manicura/internal/infra/storage/service"
	settingsRepo "github.com/mundoinsolito/manicura/internal/infra/storage/settings"
	transactionRepo "github.com/mundoinsolito/manicura/internal/infra/storage/transaction"
	appointmentsService "github.com/mundoinsolito/manicura/internal/service/appointments"
	catalogService "github.com/mundoinsolito/manicura/internal/service/catalog"
	clientsService "github.com/mundoinsolito/manicura/internal/service/clients"
	financesService "github.com/mundoinsolito/manicura/internal/service/finances"
	promotionsService "github.com/mundoinsolito/manicura/internal/service/promotions"
	scheduleService "github.com/mundoinsolito/manicura/internal/service/schedule"
	settingsService "github.com/mundoinsolito/manicura/internal/service/settings"
	createAppointmentUC "github.com/mundoinsolito/manicura/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/mundoinsolito/manicura/internal/usecase/get_available_slots"
	recordPaymentUC "github.com/mundoinsolito/manicura/internal/usecase/record_payment"
	"github.com/mundoinsolito/manicura/pkg/dbmetrics"
	"github.com/mundoinsolito/manicura/pkg/logger"
	"github.com/mundoinsolito/manicura/pkg/metrics"
	"github.com/mundoinsolito/manicura/pkg/simpletxmanager"
	"github.com/mundoinsolito/manicura/pkg/txmanager"
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

	log.Info("Starting manicura booking service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		clientRepository         *clientRepo.Repository
		serviceRepository        *serviceRepo.Repository
		settingsRepository       *settingsRepo.Repository
		blockedTimeRepository    *blockedTimeRepo.Repository
		customScheduleRepository *customScheduleRepo.Repository
		promotionRepository      *promotionRepo.Repository
		transactionRepository    *transactionRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		blockedTimeRepository = blockedTimeRepo.NewRepository(wrappedDB)
		customScheduleRepository = customScheduleRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		transactionRepository = transactionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		blockedTimeRepository = blockedTimeRepo.NewRepository(db)
		customScheduleRepository = customScheduleRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		transactionRepository = transactionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, clientRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	promotionsSvc := promotionsService.NewService(promotionRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	scheduleSvc := scheduleService.NewService(blockedTimeRepository, customScheduleRepository, log)
	financesSvc := financesService.NewService(transactionRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		serviceRepository,
		settingsRepository,
		blockedTimeRepository,
		customScheduleRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		blockedTimeRepository,
		customScheduleRepository,
		log,
	)

	recordPaymentUseCase := recordPaymentUC.NewUseCase(
		appointmentRepository,
		transactionRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getClientStatus := getClientStatusHandler.NewHandler(appointmentsSvc, log)
	site := siteHandler.NewHandler(settingsSvc, catalogSvc, promotionsSvc, log)
	adminAppointments := adminAppointmentsHandler.NewHandler(appointmentsSvc, createAppointmentUseCase, recordPaymentUseCase, log)
	adminServices := adminServicesHandler.NewHandler(catalogSvc, log)
	adminClients := adminClientsHandler.NewHandler(clientsSvc, log)
	adminPromotions := adminPromotionsHandler.NewHandler(promotionsSvc, log)
	adminSchedule := adminScheduleHandler.NewHandler(scheduleSvc, log)
	adminSettings := adminSettingsHandler.NewHandler(settingsSvc, log)
	adminTransactions := adminTransactionsHandler.NewHandler(financesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (витрина и онлайн-запись)
	// ============================================================

	// Публичные данные салона
	api.HandleFunc("/site", site.HandleSite).Methods(http.MethodGet)

	// Активные услуги
	api.HandleFunc("/services", site.HandleServices).Methods(http.MethodGet)

	// Действующие акции
	api.HandleFunc("/promotions", site.HandlePromotions).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Проверка записей клиента по cédula
	api.HandleFunc("/appointments/status", getClientStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Записи ---
	admin.HandleFunc("/appointments", adminAppointments.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/appointments", adminAppointments.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}", adminAppointments.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", adminAppointments.HandleUpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/payment", adminAppointments.HandleUpdatePayment).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}", adminAppointments.HandleDelete).Methods(http.MethodDelete)

	// --- Услуги ---
	admin.HandleFunc("/services", adminServices.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/services", adminServices.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", adminServices.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", adminServices.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", adminServices.HandleDelete).Methods(http.MethodDelete)

	// --- Клиенты ---
	admin.HandleFunc("/clients", adminClients.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/clients", adminClients.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{id}", adminClients.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{id}", adminClients.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/clients/{id}", adminClients.HandleDelete).Methods(http.MethodDelete)

	// --- Акции ---
	admin.HandleFunc("/promotions", adminPromotions.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/promotions", adminPromotions.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/promotions/{id}", adminPromotions.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/promotions/{id}", adminPromotions.HandleDelete).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/blocked-times", adminSchedule.HandleCreateBlockedTime).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-times", adminSchedule.HandleListBlockedTimes).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-times/{id}", adminSchedule.HandleDeleteBlockedTime).Methods(http.MethodDelete)
	admin.HandleFunc("/custom-schedules", adminSchedule.HandleSaveCustomSchedule).Methods(http.MethodPut)
	admin.HandleFunc("/custom-schedules", adminSchedule.HandleListCustomSchedules).Methods(http.MethodGet)
	admin.HandleFunc("/custom-schedules/{date}", adminSchedule.HandleDeleteCustomSchedule).Methods(http.MethodDelete)

	// --- Настройки ---
	admin.HandleFunc("/settings", adminSettings.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/settings", adminSettings.HandleUpdate).Methods(http.MethodPut)

	// --- Касса ---
	admin.HandleFunc("/transactions", adminTransactions.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/transactions", adminTransactions.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/transactions/summary", adminTransactions.HandleSummary).Methods(http.MethodGet)
	admin.HandleFunc("/transactions/{id}", adminTransactions.HandleDelete).Methods(http.MethodDelete)

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
