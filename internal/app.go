package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"realestate-frontend/internal/adapters/backendclient"
	"realestate-frontend/internal/adapters/filestorage"
	"realestate-frontend/internal/adapters/geocoder"
	"realestate-frontend/internal/adapters/localstore"
	logger_adapter "realestate-frontend/internal/adapters/logger"
	"realestate-frontend/internal/adapters/memorystore"
	"realestate-frontend/internal/adapters/paymentclient"
	postgres_adapter "realestate-frontend/internal/adapters/postgres"
	"realestate-frontend/internal/adapters/rest"
	"realestate-frontend/internal/adapters/scripted"
	"realestate-frontend/internal/configs"
	"realestate-frontend/internal/core/port"
	"realestate-frontend/internal/core/usecase"
	fluentlogger "realestate-frontend/pkg/fluent_logger"
	"realestate-frontend/pkg/postgres"
)

// App – структура приложения
type App struct {
	config       *configs.Config
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ДОЛГОВРЕМЕННОЕ ХРАНИЛИЩЕ (избранное + сессия) ---
	keyValueStore, err := filestorage.NewFileKeyValueStore(appConfig.Storage.FilePath)
	if err != nil {
		appLogger.Error("Failed to create file key-value store", err, nil)
		return nil, fmt.Errorf("failed to create file key-value store: %w", err)
	}

	sessionStore, err := localstore.NewSessionStore(keyValueStore)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	// Сессия не переживает перезапуск сервиса; устаревший токен
	// не должен тихо аутентифицировать запросы.
	if err := sessionStore.Clear(context.Background()); err != nil {
		appLogger.Warn("Failed to clear stale session on startup", port.Fields{"error": err.Error()})
	}

	var dbPool *pgxpool.Pool
	var wishlistStore port.WishlistStorePort
	if appConfig.Storage.Mode == "postgres" {
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Storage.DatabaseURL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		wishlistRepository, err := postgres_adapter.NewWishlistRepository(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create wishlist repository: %w", err)
		}
		if err := wishlistRepository.EnsureSchema(context.Background()); err != nil {
			dbPool.Close()
			return nil, err
		}
		wishlistStore = wishlistRepository
	} else {
		wishlistStore, err = localstore.NewWishlistStore(keyValueStore)
		if err != nil {
			return nil, fmt.Errorf("failed to create wishlist store: %w", err)
		}
	}
	appLogger.Info("Wishlist storage initialized.", port.Fields{"mode": appConfig.Storage.Mode})

	// --- 4. ИСХОДЯЩИЕ АДАПТЕРЫ (клиенты внешних API) ---
	platformClient := backendclient.NewClient(appConfig.BackendAPIURL)
	paymentClient := paymentclient.NewClient(appConfig.PaymentAPIURL)
	nominatimClient := geocoder.NewNominatimClient(
		appConfig.Geocoder.URL,
		appConfig.Geocoder.UserAgent,
		time.Duration(appConfig.Geocoder.TimeoutMS)*time.Millisecond,
	)

	conversationStore := memorystore.NewConversationStore()
	todoStore := memorystore.NewTodoStore()
	responder := scripted.NewResponder()
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 5. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	browseUseCase := usecase.NewBrowsePropertiesUseCase(platformClient)
	detailsUseCase := usecase.NewGetPropertyDetailsUseCase(platformClient, nominatimClient)

	getWishlistUseCase := usecase.NewGetWishlistUseCase(wishlistStore)
	toggleWishlistUseCase := usecase.NewToggleWishlistUseCase(wishlistStore)
	removeFromWishlistUseCase := usecase.NewRemoveFromWishlistUseCase(wishlistStore)

	submitListingUseCase := usecase.NewSubmitListingUseCase(platformClient)
	deleteListingUseCase := usecase.NewDeleteListingUseCase(platformClient)

	createOrderUseCase := usecase.NewCreatePaymentOrderUseCase(paymentClient, sessionStore, appConfig.Checkout.KeyID)
	confirmPaymentUseCase := usecase.NewConfirmPaymentUseCase(paymentClient)

	getUsersUseCase := usecase.NewGetUsersUseCase(platformClient)
	changeRoleUseCase := usecase.NewChangeUserRoleUseCase(platformClient)
	allPropertiesUseCase := usecase.NewGetAllPropertiesUseCase(platformClient)
	updateStatusUseCase := usecase.NewUpdatePropertyStatusUseCase(platformClient)

	openConversationUseCase := usecase.NewOpenConversationUseCase(conversationStore, responder)
	sendReplyUseCase := usecase.NewSendReplyUseCase(conversationStore, responder)
	manageTodosUseCase := usecase.NewManageTodosUseCase(todoStore)

	appLogger.Info("All use cases initialized.", nil)

	// --- 6. REST API Server ---
	propertyHandler := rest.NewPropertyHandler(browseUseCase, detailsUseCase, getWishlistUseCase)
	wishlistHandler := rest.NewWishlistHandler(getWishlistUseCase, toggleWishlistUseCase, removeFromWishlistUseCase)
	listingHandler := rest.NewListingHandler(submitListingUseCase, deleteListingUseCase)
	paymentHandler := rest.NewPaymentHandler(createOrderUseCase, confirmPaymentUseCase)
	adminHandler := rest.NewAdminHandler(getUsersUseCase, changeRoleUseCase, allPropertiesUseCase, updateStatusUseCase, deleteListingUseCase)
	inboxHandler := rest.NewInboxHandler(openConversationUseCase, sendReplyUseCase)
	todoHandler := rest.NewTodoHandler(manageTodosUseCase)
	sessionHandler := rest.NewSessionHandler(sessionStore)

	apiServer := rest.NewServer(
		appConfig.Port,
		appConfig.AllowedOrigin,
		sessionStore,
		propertyHandler,
		wishlistHandler,
		listingHandler,
		paymentHandler,
		adminHandler,
		inboxHandler,
		todoHandler,
		sessionHandler,
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
