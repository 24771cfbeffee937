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

	addCarHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/add_car"
	assistantSearchHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/assistant_search"
	cancelRentalHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/cancel_rental"
	createRentalHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/create_rental"
	getAvailabilityHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_availability"
	getAvailableTimesHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_available_times"
	getBlockedDatesHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_blocked_dates"
	getCarHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_car"
	getConversationMessagesHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_conversation_messages"
	getConversationsHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_conversations"
	getHostRentalsHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_host_rentals"
	getQuoteHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_quote"
	getRentalHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_rental"
	getUserRentalsHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/get_user_rentals"
	listCarsHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/list_cars"
	sendMessageHandler "github.com/cubecar/CC-RentalService/internal/api/handlers/send_message"
	"github.com/cubecar/CC-RentalService/internal/api/middleware"
	"github.com/cubecar/CC-RentalService/internal/config"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	messageRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/message"
	rentalRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/rental"
	assistantClient "github.com/cubecar/CC-RentalService/internal/integrations/assistant"
	paymentClient "github.com/cubecar/CC-RentalService/internal/integrations/paymentgateway"
	carsService "github.com/cubecar/CC-RentalService/internal/service/cars"
	messagesService "github.com/cubecar/CC-RentalService/internal/service/messages"
	rentalsService "github.com/cubecar/CC-RentalService/internal/service/rentals"
	assistantSearchUC "github.com/cubecar/CC-RentalService/internal/usecase/assistant_search"
	createRentalUC "github.com/cubecar/CC-RentalService/internal/usecase/create_rental"
	getAvailabilityUC "github.com/cubecar/CC-RentalService/internal/usecase/get_availability"
	getAvailableTimesUC "github.com/cubecar/CC-RentalService/internal/usecase/get_available_times"
	getBlockedDatesUC "github.com/cubecar/CC-RentalService/internal/usecase/get_blocked_dates"
	getQuoteUC "github.com/cubecar/CC-RentalService/internal/usecase/get_quote"
	"github.com/cubecar/CC-RentalService/pkg/dbmetrics"
	"github.com/cubecar/CC-RentalService/pkg/logger"
	"github.com/cubecar/CC-RentalService/pkg/metrics"
	"github.com/cubecar/CC-RentalService/pkg/simpletxmanager"
	"github.com/cubecar/CC-RentalService/pkg/txmanager"
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

	log.Info("Starting CC-RentalService...")
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

	// Инициализируем клиент платежного шлюза
	payments := paymentClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.Currency,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Инициализируем клиент AI-ассистента (если включен)
	var assistant assistantSearchUC.AssistantClient
	if cfg.Assistant.Enabled {
		client, err := assistantClient.NewClient(
			context.Background(),
			cfg.Assistant.APIKey(),
			cfg.Assistant.Model,
			log,
		)
		if err != nil {
			log.Warn("Assistant client unavailable, search will degrade: %v", err)
		} else {
			defer client.Close()
			assistant = client
			log.Info("Assistant client initialized (model=%s)", cfg.Assistant.Model)
		}
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		carRepository     *carRepo.Repository
		rentalRepository  *rentalRepo.Repository
		messageRepository *messageRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		carRepository = carRepo.NewRepository(wrappedDB)
		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		messageRepository = messageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		carRepository = carRepo.NewRepository(db)
		rentalRepository = rentalRepo.NewRepository(db)
		messageRepository = messageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	carsSvc := carsService.NewService(carRepository, log)
	rentalsSvc := rentalsService.NewService(rentalRepository, log)
	messagesSvc := messagesService.NewService(messageRepository, carRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(carRepository, rentalRepository, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(carRepository, log)
	getBlockedDatesUseCase := getBlockedDatesUC.NewUseCase(carRepository, rentalRepository, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(
		carRepository,
		getQuoteUC.PricingConfig{
			ServiceFeePercent: cfg.Pricing.ServiceFeePercent,
			FlatServiceFee:    cfg.Pricing.FlatServiceFee,
			FlatInsurance:     cfg.Pricing.FlatInsurance,
		},
		log,
	)
	createRentalUseCase := createRentalUC.NewUseCase(
		carRepository,
		rentalRepository,
		payments,
		txMgr,
		createRentalUC.PricingConfig{ServiceFeePercent: cfg.Pricing.ServiceFeePercent},
		log,
	)
	assistantSearchUseCase := assistantSearchUC.NewUseCase(assistant, log)

	// Инициализируем handlers
	listCars := listCarsHandler.NewHandler(carsSvc, log)
	getCar := getCarHandler.NewHandler(carsSvc, log)
	addCar := addCarHandler.NewHandler(carsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(getBlockedDatesUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	createRental := createRentalHandler.NewHandler(createRentalUseCase, log)
	getRental := getRentalHandler.NewHandler(rentalsSvc, log)
	cancelRental := cancelRentalHandler.NewHandler(rentalsSvc, log)
	getUserRentals := getUserRentalsHandler.NewHandler(rentalsSvc, log)
	getHostRentals := getHostRentalsHandler.NewHandler(rentalsSvc, log)
	sendMessage := sendMessageHandler.NewHandler(messagesSvc, log)
	getConversations := getConversationsHandler.NewHandler(messagesSvc, log)
	getConversationMessages := getConversationMessagesHandler.NewHandler(messagesSvc, log)
	assistantSearch := assistantSearchHandler.NewHandler(assistantSearchUseCase, log)

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

	// Каталог машин
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)

	// Календарь доступности
	api.HandleFunc("/cars/{carId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// Расчет стоимости
	api.HandleFunc("/cars/{carId}/quote", getQuote.Handle).Methods(http.MethodGet)

	// AI-ассистент поиска
	api.HandleFunc("/assistant/search", assistantSearch.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Объявления ---
	protected.HandleFunc("/cars", addCar.Handle).Methods(http.MethodPost)

	// --- Аренды ---
	protected.HandleFunc("/rentals", createRental.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{rentalId}/cancel", cancelRental.Handle).Methods(http.MethodPatch)

	// История аренд пользователя и хоста
	protected.HandleFunc("/users/{userId}/rentals", getUserRentals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/hosts/{hostId}/rentals", getHostRentals.Handle).Methods(http.MethodGet)

	// --- Сообщения ---
	protected.HandleFunc("/messages", sendMessage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/conversations", getConversations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/conversations/{conversationId}/messages", getConversationMessages.Handle).Methods(http.MethodGet)

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
