package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/config"
	"healthtrack/internal/database"
	"healthtrack/internal/handlers"
	"healthtrack/internal/ingest"
	"healthtrack/internal/middleware"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
	"healthtrack/internal/service"
)

func main() {
	config.InitLogger()
	slog.Info("Starting application", "service", "healthtrack", "version", "1.0.0")

	cfg := config.Load()
	slog.Info("Configuration loaded successfully",
		"server_port", cfg.Server.Port,
		"gin_mode", cfg.Server.Mode,
		"db_host", cfg.Database.Host,
		"mqtt_enabled", cfg.MQTT.Broker != "",
	)

	db := database.Connect(cfg.Database)
	database.Migrate(db,
		&models.User{},
		&models.BloodPressureReading{},
		&models.SleepEntry{},
		&models.BloodTestResult{},
		&models.UserSettings{},
	)

	// Репозитории
	userRepo := repository.NewUserRepository(db)
	readingRepo := repository.NewReadingRepository(db)
	sleepRepo := repository.NewSleepRepository(db)
	bloodTestRepo := repository.NewBloodTestRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Сервисы
	jwtService := service.NewJWTService()
	userService := service.NewUserService(userRepo, jwtService)
	settingsService := service.NewSettingsService(settingsRepo)
	readingService := service.NewReadingService(readingRepo, settingsService)
	sleepService := service.NewSleepService(sleepRepo)
	bloodTestService := service.NewBloodTestService(bloodTestRepo)
	statsService := service.NewStatsService(readingRepo, sleepRepo, settingsService)
	exportService := service.NewExportService(readingRepo, sleepRepo, bloodTestRepo, settingsService, statsService)

	// Обработчики
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, userService)
	router := handlers.NewRouter(
		db,
		handlers.NewAuthHandlers(userService),
		handlers.NewReadingHandlers(readingService),
		handlers.NewSleepHandlers(sleepService),
		handlers.NewBloodTestHandlers(bloodTestService),
		handlers.NewSettingsHandlers(settingsService),
		handlers.NewStatsHandlers(statsService),
		handlers.NewExportHandlers(exportService),
		jwtMiddleware,
	)

	gin.SetMode(cfg.Server.Mode)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Приём измерений с домашних тонометров — опционально
	var listener *ingest.Listener
	if cfg.MQTT.Broker != "" {
		listener = ingest.NewListener(cfg.MQTT, readingService)
		if err := listener.Start(); err != nil {
			slog.Error("Failed to start MQTT listener", "error", err)
			slog.Info("Continuing without device ingestion")
			listener = nil
		}
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started successfully", "port", cfg.Server.Port)

	waitForShutdown(server, listener)
}

func waitForShutdown(server *http.Server, listener *ingest.Listener) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutdown signal received")

	if listener != nil {
		listener.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server gracefully stopped")
}
