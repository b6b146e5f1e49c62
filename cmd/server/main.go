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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/dentwise/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/dentwise/booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/dentwise/booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/dentwise/booking-service/internal/api/handlers/get_available_slots"
	getDoctorAppointmentsHandler "github.com/dentwise/booking-service/internal/api/handlers/get_doctor_appointments"
	getNextAvailableSlotHandler "github.com/dentwise/booking-service/internal/api/handlers/get_next_available_slot"
	getUserAppointmentsHandler "github.com/dentwise/booking-service/internal/api/handlers/get_user_appointments"
	listDoctorsHandler "github.com/dentwise/booking-service/internal/api/handlers/list_doctors"
	"github.com/dentwise/booking-service/internal/api/middleware"
	"github.com/dentwise/booking-service/internal/config"
	appointmentRepo "github.com/dentwise/booking-service/internal/infra/storage/appointment"
	doctorRepo "github.com/dentwise/booking-service/internal/infra/storage/doctor"
	userRepo "github.com/dentwise/booking-service/internal/infra/storage/user"
	appointmentsService "github.com/dentwise/booking-service/internal/service/appointments"
	doctorsService "github.com/dentwise/booking-service/internal/service/doctors"
	"github.com/dentwise/booking-service/internal/service/jobs"
	createAppointmentUC "github.com/dentwise/booking-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/dentwise/booking-service/internal/usecase/get_available_slots"
	getNextSlotUC "github.com/dentwise/booking-service/internal/usecase/get_next_slot"
	"github.com/dentwise/booking-service/pkg/dbmetrics"
	"github.com/dentwise/booking-service/pkg/logger"
	"github.com/dentwise/booking-service/pkg/metrics"
	"github.com/dentwise/booking-service/pkg/simpletxmanager"
	"github.com/dentwise/booking-service/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting dentwise booking-service...")
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
		appointmentRepository *appointmentRepo.Repository
		doctorRepository      *doctorRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		doctorRepository = doctorRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		doctorRepository,
		log,
	)
	doctorSvc := doctorsService.NewService(
		doctorRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		doctorRepository,
		log,
	)

	getNextSlotUseCase := getNextSlotUC.NewUseCase(
		getAvailableSlotsUseCase,
		getNextSlotUC.RealTimeProvider{},
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		doctorRepository,
		userRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listDoctors := listDoctorsHandler.NewHandler(doctorSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextAvailableSlot := getNextAvailableSlotHandler.NewHandler(getNextSlotUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentSvc, log)

	// Запускаем фоновые задачи
	var scheduler *jobs.Scheduler
	if cfg.Cron.Enabled {
		scheduler = jobs.NewScheduler(appointmentSvc, log)
		if err := scheduler.Start(cfg.Cron.CompleteAppointmentsSchedule); err != nil {
			log.Fatal("Failed to start job scheduler: %v", err)
		}
	}

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список врачей
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)

	// Доступные слоты врача на день
	api.HandleFunc("/doctors/{doctorId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот врача
	api.HandleFunc("/doctors/{doctorId}/next-available-slot",
		getNextAvailableSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на прием ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/me/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// Записи врача (для админки)
	protected.HandleFunc("/doctors/{doctorId}/appointments", getDoctorAppointments.Handle).Methods(http.MethodGet)

	// CORS для браузерного UI
	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{
				http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions,
			}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderUserID}),
		)(r)
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Останавливаем фоновые задачи
	if scheduler != nil {
		scheduler.Stop()
	}

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
