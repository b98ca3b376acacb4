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

	cancelBookingHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/create_booking"
	createPartyBookingHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/create_party_booking"
	createVoucherHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/create_voucher"
	deleteVoucherHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/delete_voucher"
	getBookingHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/get_booking"
	getRatesHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/get_rates"
	getVoucherHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/get_voucher"
	listBookingsHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/list_bookings"
	listVouchersHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/list_vouchers"
	quoteBookingHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/quote_booking"
	updateBookingStatusHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/update_booking_status"
	updateRatesHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/update_rates"
	updateVoucherHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/update_voucher"
	validateVoucherHandler "github.com/m04kA/JMP-BookingService/internal/api/handlers/validate_voucher"
	"github.com/m04kA/JMP-BookingService/internal/api/middleware"
	"github.com/m04kA/JMP-BookingService/internal/config"
	bookingRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/booking"
	ratesRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/rates"
	voucherRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/voucher"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
	bookingsService "github.com/m04kA/JMP-BookingService/internal/service/bookings"
	ratesService "github.com/m04kA/JMP-BookingService/internal/service/rates"
	vouchersService "github.com/m04kA/JMP-BookingService/internal/service/vouchers"
	createBookingUC "github.com/m04kA/JMP-BookingService/internal/usecase/create_booking"
	createPartyBookingUC "github.com/m04kA/JMP-BookingService/internal/usecase/create_party_booking"
	quoteBookingUC "github.com/m04kA/JMP-BookingService/internal/usecase/quote_booking"
	"github.com/m04kA/JMP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JMP-BookingService/pkg/logger"
	"github.com/m04kA/JMP-BookingService/pkg/metrics"
	"github.com/m04kA/JMP-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/JMP-BookingService/pkg/txmanager"
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

	log.Info("Starting JMP-BookingService...")
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
		bookingRepository *bookingRepo.Repository
		voucherRepository *voucherRepo.Repository
		ratesRepository   *ratesRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		voucherRepository = voucherRepo.NewRepository(wrappedDB)
		ratesRepository = ratesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		voucherRepository = voucherRepo.NewRepository(db)
		ratesRepository = ratesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Pricing engine, общий для quote, создания бронирований и проверки vouchers
	engine := pricing.NewEngine()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	voucherSvc := vouchersService.NewService(voucherRepository, engine, log)
	ratesSvc := ratesService.NewService(ratesRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		voucherRepository,
		ratesSvc,
		engine,
		txMgr,
		log,
	)
	createPartyBookingUseCase := createPartyBookingUC.NewUseCase(
		bookingRepository,
		engine,
		log,
	)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		voucherRepository,
		ratesSvc,
		engine,
		log,
	)

	// Инициализируем handlers
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	validateVoucher := validateVoucherHandler.NewHandler(voucherSvc, log)
	getRates := getRatesHandler.NewHandler(ratesSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createPartyBooking := createPartyBookingHandler.NewHandler(createPartyBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	createVoucher := createVoucherHandler.NewHandler(voucherSvc, log)
	listVouchers := listVouchersHandler.NewHandler(voucherSvc, log)
	getVoucher := getVoucherHandler.NewHandler(voucherSvc, log)
	updateVoucher := updateVoucherHandler.NewHandler(voucherSvc, log)
	deleteVoucher := deleteVoucherHandler.NewHandler(voucherSvc, log)
	updateRates := updateRatesHandler.NewHandler(ratesSvc, log)

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

	// Предварительный расчет стоимости сессии и party
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/party/quote", quoteBooking.HandleParty).Methods(http.MethodPost)

	// Проверка voucher против суммы заказа
	api.HandleFunc("/vouchers/validate", validateVoucher.Handle).Methods(http.MethodPost)

	// Текущие тарифы сессий
	api.HandleFunc("/pricing/rates", getRates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/party", createPartyBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Vouchers (админка) ---
	protected.HandleFunc("/vouchers", createVoucher.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/vouchers", listVouchers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vouchers/{code}", getVoucher.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vouchers/{code}", updateVoucher.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/vouchers/{code}", deleteVoucher.Handle).Methods(http.MethodDelete)

	// --- Тарифы (админка) ---
	protected.HandleFunc("/pricing/rates", updateRates.Handle).Methods(http.MethodPut)

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
