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
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addOwnerHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/add_owner"
	bookAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/book_appointment"
	cancelMyAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/cancel_my_appointment"
	changePasswordHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/change_password"
	deleteAccountHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_account"
	deleteAppointmentHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_appointment"
	deleteBusinessHoursHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_business_hours"
	deleteServiceHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/delete_service"
	exportAppointmentsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/export_appointments"
	getAppointmentsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_business_hours"
	getBusinessInfoHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_business_info"
	getMyAppointmentsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_my_appointments"
	getOpeningHoursHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_opening_hours"
	listAllServicesHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_all_services"
	listServicesHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_services"
	registerCustomerHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/register_customer"
	saveBusinessHoursHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/save_business_hours"
	saveServiceHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/save_service"
	setServiceAvailabilityHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/set_service_availability"
	updateBusinessInfoHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/update_business_info"
	updateProfileHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/update_profile"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/appointment"
	businessHourRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/businesshour"
	businessInfoRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/businessinfo"
	customerRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/customer"
	serviceRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulerService/internal/integrations/notifier"
	"github.com/m04kA/SMC-SchedulerService/internal/jobs"
	"github.com/m04kA/SMC-SchedulerService/internal/seed"
	appointmentsService "github.com/m04kA/SMC-SchedulerService/internal/service/appointments"
	"github.com/m04kA/SMC-SchedulerService/internal/service/availability"
	businessHoursService "github.com/m04kA/SMC-SchedulerService/internal/service/businesshours"
	businessInfoService "github.com/m04kA/SMC-SchedulerService/internal/service/businessinfo"
	customersService "github.com/m04kA/SMC-SchedulerService/internal/service/customers"
	servicesService "github.com/m04kA/SMC-SchedulerService/internal/service/services"
	usersService "github.com/m04kA/SMC-SchedulerService/internal/service/users"
	bookAppointmentUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
	registerCustomerUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/register_customer"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/locker"
	"github.com/m04kA/SMC-SchedulerService/pkg/logger"
	"github.com/m04kA/SMC-SchedulerService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/scheduler"
	"github.com/m04kA/SMC-SchedulerService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulerService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Invalid business timezone: %v", err)
	}
	log.Info("Business timezone: %s, booking horizon: %d month(s)", location, cfg.Business.HorizonMonths)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных, драйвер lib/pq или pgx
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
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
	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Исполнитель запросов и менеджер транзакций (с метриками или без)
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txManager = simpletxmanager.NewTransactionManager(db)
	}

	// Блокировки проверок с последующей записью
	var lock locker.Locker
	switch cfg.Locks.Backend {
	case config.LockBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Locks.RedisAddr,
			Password: cfg.Locks.RedisPassword,
			DB:       cfg.Locks.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Locks.RedisAddr, err)
		}
		lock = locker.NewRedis(redisClient, txManager,
			time.Duration(cfg.Locks.TTL)*time.Second,
			time.Duration(cfg.Locks.AcquireTimeout)*time.Second,
		)
	case config.LockBackendLocal:
		lock = locker.NewLocal(txManager)
	default:
		lock = locker.NewAdvisory(txManager, executor)
	}
	log.Info("Lock backend: %s", cfg.Locks.Backend)

	// Отправка писем клиентам
	mailer, err := notifier.New(notifier.Config{
		Transport:    cfg.Notifier.Transport,
		From:         cfg.Notifier.From,
		SMTPHost:     cfg.Notifier.SMTPHost,
		SMTPPort:     cfg.Notifier.SMTPPort,
		SMTPUsername: cfg.Notifier.SMTPUsername,
		SMTPPassword: cfg.Notifier.SMTPPassword,
		KafkaBrokers: cfg.Notifier.KafkaBrokers,
		KafkaTopic:   cfg.Notifier.KafkaTopic,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize notifier: %v", err)
	}
	defer mailer.Close()
	log.Info("Notifier transport: %s", cfg.Notifier.Transport)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(executor, location)
	businessHourRepository := businessHourRepo.NewRepository(executor)
	businessInfoRepository := businessInfoRepo.NewRepository(executor)
	customerRepository := customerRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)

	// Инициализируем сервисы
	checker := availability.NewChecker(appointmentRepository)
	customerSvc := customersService.NewService(customerRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, customerSvc, log)
	businessHoursSvc := businessHoursService.NewService(businessHourRepository, lock, log)
	businessInfoSvc := businessInfoService.NewService(businessInfoRepository, log)
	serviceSvc := servicesService.NewService(serviceRepository, lock, log)
	userSvc := usersService.NewService(userRepository, lock, log, cfg.Security.BcryptCost)

	// Первичное заполнение: владелец, часы работы, профиль
	if cfg.Seed.Enabled {
		data, err := seed.Load(cfg.Seed.File)
		if err != nil {
			log.Fatal("Failed to load seed data: %v", err)
		}
		if err := seed.NewSeeder(userSvc, businessHoursSvc, businessInfoSvc, log).Run(context.Background(), data); err != nil {
			log.Fatal("Failed to seed initial data: %v", err)
		}
	}

	// Инициализируем use cases
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}
	generator := getAvailableSlotsUC.NewGenerator(checker, cfg.Business.HorizonMonths)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceSvc,
		businessHoursSvc,
		generator,
		timeProvider,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		serviceSvc,
		businessHoursSvc,
		checker,
		generator,
		customerSvc,
		appointmentRepository,
		lock,
		mailer,
		metricsCollector,
		timeProvider,
		cfg.Business.HorizonMonths,
		log,
	)

	registerCustomerUseCase := registerCustomerUC.NewUseCase(userSvc, customerSvc, lock, log)

	// Фоновые задачи: завершение прошедших записей и напоминания
	jobsCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()

	sched := scheduler.New(log, metricsCollector)
	if cfg.Jobs.Enabled {
		completion := jobs.NewCompletionSweep(appointmentRepository, txManager, metricsCollector, timeProvider, log)
		reminder := jobs.NewReminderSweep(appointmentRepository, mailer, metricsCollector, timeProvider, log)

		reminderHour, reminderMinute, err := cfg.Jobs.ReminderAt()
		if err != nil {
			log.Fatal("Invalid reminder time: %v", err)
		}

		sched.Every(jobs.CompletionJobName, time.Duration(cfg.Jobs.CompletionInterval)*time.Second, completion.Task)
		if err := sched.DailyAt(jobs.ReminderJobName, reminderHour, reminderMinute, location, reminder.Task); err != nil {
			log.Fatal("Failed to schedule reminders: %v", err)
		}
		sched.Start(jobsCtx)
		log.Info("Background jobs started (completion every %ds, reminders at %s)",
			cfg.Jobs.CompletionInterval, cfg.Jobs.ReminderTime)
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, location, log)
	registerCustomer := registerCustomerHandler.NewHandler(registerCustomerUseCase, log)
	listServices := listServicesHandler.NewHandler(serviceSvc, log)
	getOpeningHours := getOpeningHoursHandler.NewHandler(businessHoursSvc, log)
	getBusinessInfo := getBusinessInfoHandler.NewHandler(businessInfoSvc, log)

	getMyAppointments := getMyAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelMyAppointment := cancelMyAppointmentHandler.NewHandler(appointmentSvc, log)
	updateProfile := updateProfileHandler.NewHandler(customerSvc, log)
	changePassword := changePasswordHandler.NewHandler(userSvc, log)
	deleteAccount := deleteAccountHandler.NewHandler(userSvc, log)

	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(appointmentSvc, log)
	listAllServices := listAllServicesHandler.NewHandler(serviceSvc, log)
	saveService := saveServiceHandler.NewHandler(serviceSvc, log)
	setServiceAvailability := setServiceAvailabilityHandler.NewHandler(serviceSvc, log)
	deleteService := deleteServiceHandler.NewHandler(serviceSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(businessHoursSvc, log)
	saveBusinessHours := saveBusinessHoursHandler.NewHandler(businessHoursSvc, log)
	deleteBusinessHours := deleteBusinessHoursHandler.NewHandler(businessHoursSvc, log)
	updateBusinessInfo := updateBusinessInfoHandler.NewHandler(businessInfoSvc, log)
	addOwner := addOwnerHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// API prefix. Пользователь из заголовков кладется в контекст, если передан.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Identify)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	// Запись гостя или пользователя, перенос записи
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/register", registerCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/opening-hours", getOpeningHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business-info", getBusinessInfo.Handle).Methods(http.MethodGet)

	// ============================================================
	// CUSTOMER ROUTES (требуют X-Username header)
	// ============================================================

	me := api.PathPrefix("/me").Subrouter()
	me.Use(middleware.Auth)

	me.HandleFunc("", deleteAccount.Handle).Methods(http.MethodDelete)
	me.HandleFunc("/appointments", getMyAppointments.Handle).Methods(http.MethodGet)
	me.HandleFunc("/appointments/{appointmentId}", cancelMyAppointment.Handle).Methods(http.MethodDelete)
	me.HandleFunc("/profile", updateProfile.Handle).Methods(http.MethodPut)
	me.HandleFunc("/password", changePassword.Handle).Methods(http.MethodPut)

	// ============================================================
	// OWNER ROUTES (требуют X-Username и X-User-Role: ROLE_OWNER)
	// ============================================================

	owner := api.PathPrefix("/owner").Subrouter()
	owner.Use(middleware.RequireOwner)

	// --- Записи ---
	owner.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	owner.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/services", saveService.Handle).Methods(http.MethodPost, http.MethodPut)
	owner.HandleFunc("/services/{serviceId}/availability", setServiceAvailability.Handle).Methods(http.MethodPatch)
	owner.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Часы работы и профиль ---
	owner.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/business-hours", saveBusinessHours.Handle).Methods(http.MethodPut)
	owner.HandleFunc("/business-hours/{id}", deleteBusinessHours.Handle).Methods(http.MethodDelete)
	owner.HandleFunc("/business-info", updateBusinessInfo.Handle).Methods(http.MethodPut)

	// --- Аккаунты владельцев ---
	owner.HandleFunc("/owners", addOwner.Handle).Methods(http.MethodPost)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые задачи и ждем текущие запуски
	stopJobs()
	sched.Wait()
	log.Info("Background jobs stopped")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
