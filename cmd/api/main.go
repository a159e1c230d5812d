package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/overtime-api/internal/config"
	"github.com/overtime-api/internal/handler"
	"github.com/overtime-api/internal/repository"
	"github.com/overtime-api/internal/service"
	"github.com/overtime-api/internal/storage"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	st, err := storage.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	// Миграции и справочники
	if err := st.Migrate(ctx); err != nil {
		return err
	}
	if err := st.Seed(ctx); err != nil {
		return err
	}

	db := st.DB()

	// Инициализация репозиториев
	tx := repository.NewTransactor(db)
	deptRepo := repository.NewDepartmentRepository(db)
	postRepo := repository.NewPostRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	actionTypeRepo := repository.NewActionTypeRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	actionRepo := repository.NewActionRepository(db)

	// Инициализация сервисов
	deptService := service.NewDepartmentService(tx, deptRepo)
	postService := service.NewPostService(tx, postRepo)
	empService := service.NewEmployeeService(tx, empRepo, deptRepo, postRepo, roleRepo)
	actionService := service.NewActionService(tx, actionRepo, empRepo, actionTypeRepo)
	refService := service.NewReferenceService(roleRepo, actionTypeRepo)
	docService := service.NewDocumentService(cfg.Document.TempDir)

	// Настройка роутера
	router := handler.NewRouter(handler.Handlers{
		Departments: handler.NewDepartmentHandler(deptService, logger),
		Posts:       handler.NewPostHandler(postService, logger),
		Employees:   handler.NewEmployeeHandler(empService, logger),
		Actions:     handler.NewActionHandler(actionService, logger),
		References:  handler.NewReferenceHandler(refService, logger),
		Documents:   handler.NewDocumentHandler(docService, logger),
	}, cfg.RateLimit.PerMinute, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is starting",
			slog.String("port", cfg.Server.Port),
			slog.String("db_driver", cfg.Database.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
