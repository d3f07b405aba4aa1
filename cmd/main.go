package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/club-manager/config"
	"github.com/Dosada05/club-manager/handlers"
	"github.com/Dosada05/club-manager/live"
	api "github.com/Dosada05/club-manager/routes"
	"github.com/Dosada05/club-manager/seed"
	"github.com/Dosada05/club-manager/services"
	"github.com/Dosada05/club-manager/storage"
	"github.com/Dosada05/club-manager/store"
)

const reminderInterval = time.Minute // How often the reminder scheduler runs

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Загрузка мок-датасета и инициализация реестра сущностей
	dataset, err := seed.Load()
	if err != nil {
		logger.Error("failed to load seed dataset", slog.Any("error", err))
		os.Exit(1)
	}
	entityStore := store.New(dataset)
	logger.Info("entity store initialized",
		slog.Int("clubs", len(dataset.Clubs)),
		slog.Int("teams", len(dataset.Teams)),
		slog.Int("players", len(dataset.Players)),
		slog.Int("events", len(dataset.Events)))

	// Долговременное состояние сессии: Redis или in-memory фолбэк
	var kv storage.KeyValueStore
	if cfg.RedisAddr != "" {
		kv, err = storage.NewRedisStore(storage.RedisStoreConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Error("failed to initialize redis store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("redis session store initialized", slog.String("addr", cfg.RedisAddr))
	} else {
		kv = storage.NewMemoryStore()
		logger.Warn("REDIS_ADDR is not set, session state will not survive restarts")
	}

	// Инициализация WebSocket Hub
	wsHub := live.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация сервисов
	clock := clockwork.NewRealClock()
	attendanceService := services.NewAttendanceService(clock)
	statsService := services.NewStatsService(entityStore, attendanceService, clock)
	sessionService := services.NewSessionService(entityStore, kv)
	eventService := services.NewEventService(entityStore, attendanceService, wsHub, clock)
	dashboardService := services.NewDashboardService(entityStore, attendanceService, statsService, clock)
	reminderService := services.NewReminderService(entityStore, wsHub, clock, logger)
	logger.Info("Services initialized")

	// Запуск планировщика напоминаний о предстоящих событиях
	go func() {
		ticker := time.NewTicker(reminderInterval)
		defer ticker.Stop()
		logger.Info("Event reminder scheduler started", slog.Duration("interval", reminderInterval))

		// Run once immediately at startup, then on ticker
		if _, err := reminderService.DispatchDueReminders(context.Background()); err != nil {
			logger.Error("Scheduler: initial run failed", slog.Any("error", err))
		}

		for range ticker.C {
			if _, err := reminderService.DispatchDueReminders(context.Background()); err != nil {
				logger.Error("Scheduler: periodic run failed", slog.Any("error", err))
			}
		}
	}()

	// Инициализация обработчиков HTTP
	authHandler := handlers.NewAuthHandler(sessionService, cfg.JWTSecretKey)
	userHandler := handlers.NewUserHandler(entityStore)
	clubHandler := handlers.NewClubHandler(entityStore)
	teamHandler := handlers.NewTeamHandler(entityStore)
	eventHandler := handlers.NewEventHandler(eventService, attendanceService, entityStore)
	statsHandler := handlers.NewStatsHandler(statsService)
	chatHandler := handlers.NewChatHandler(entityStore)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, entityStore)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, entityStore)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.JWTSecretKey,
		authHandler,
		userHandler,
		clubHandler,
		teamHandler,
		eventHandler,
		statsHandler,
		chatHandler,
		dashboardHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		} else {
			logger.Info("server stopped gracefully")
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}
