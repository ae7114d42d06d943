package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartpark-payroll-api/internal/config"
	"github.com/smartpark-payroll-api/internal/credential"
	"github.com/smartpark-payroll-api/internal/database"
	"github.com/smartpark-payroll-api/internal/handler"
	"github.com/smartpark-payroll-api/internal/repository"
	"github.com/smartpark-payroll-api/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := database.Migrate(db); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.SeedData {
		if err := database.Seed(context.Background(), db); err != nil {
			logger.Error("failed to seed data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	salaryRepo := repository.NewSalaryRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Инициализация сервисов
	authService := service.NewAuthService(userRepo, credential.NewHasher(cfg.Auth.BcryptCost), logger)
	deptService := service.NewDepartmentService(deptRepo)
	empService := service.NewEmployeeService(empRepo)
	salaryService := service.NewSalaryService(salaryRepo)
	reportService := service.NewReportService(reportRepo)

	// Настройка роутера
	router := handler.NewRouter(handler.Handlers{
		Auth:        handler.NewAuthHandler(authService, logger),
		Departments: handler.NewDepartmentHandler(deptService, logger),
		Employees:   handler.NewEmployeeHandler(empService, logger),
		Salaries:    handler.NewSalaryHandler(salaryService, logger),
		Reports:     handler.NewReportHandler(reportService, logger),
	}, cfg.Server.CORSAllowedOrigins, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
