package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adizon-admin/internal/client"
	"adizon-admin/internal/config"
	"adizon-admin/internal/database"
	"adizon-admin/internal/domain"
	"adizon-admin/internal/handler"
	"adizon-admin/internal/repository"
	"adizon-admin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Config load failed: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// Журнал действий (PostgreSQL, опционально)
	var audit domain.AuditRepository = repository.NewNopAuditRepository()
	if cfg.Audit.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := database.NewPostgresDB(ctx, cfg.DSN())
		cancel()
		if err != nil {
			logger.Fatalf("Audit database connection failed: %v", err)
		}
		defer db.Close()
		audit = repository.NewAuditRepository(db)
		logger.Info("Audit journal enabled")
	}

	// Клиент Adizon API
	apiClient := client.NewClient(cfg.API.BaseURL, cfg.API.Token, logger, client.WithTimeout(cfg.API.Timeout))
	logger.WithField("api_url", cfg.API.BaseURL).Info("Adizon API client configured")

	// Use Cases
	dashboardUC := usecase.NewDashboardUseCase(apiClient, audit, logger)
	userUC := usecase.NewUserUseCase(apiClient, audit, logger)
	approvalUC := usecase.NewApprovalUseCase(apiClient, audit, logger)

	renderer, err := handler.NewRenderer()
	if err != nil {
		logger.Fatalf("Templates failed: %v", err)
	}

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handler.NewFormValidator()
	e.Use(middleware.Recover())
	e.Use(handler.LoggingMiddleware(logger))

	handler.RegisterHandlers(e, handler.NewConsoleHandler(dashboardUC, userUC, approvalUC, logger))

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
