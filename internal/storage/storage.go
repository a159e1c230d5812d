package storage

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/overtime-api/internal/config"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations
var embedMigrations embed.FS

// Storage владеет подключением к БД на всё время жизни процесса
type Storage struct {
	db      *gorm.DB
	dialect goose.Dialect
	dir     string
	logger  *slog.Logger
}

// Open подключается к БД, указанной в конфигурации
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	var (
		dialector gorm.Dialector
		dialect   goose.Dialect
		dir       string
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.Path + "?_busy_timeout=5000&_journal_mode=WAL")
		dialect = goose.DialectSQLite3
		dir = "migrations/sqlite"
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
		dialect = goose.DialectPostgres
		dir = "migrations/postgres"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	level := gormlogger.Warn
	if logger.Enabled(ctx, slog.LevelDebug) {
		level = gormlogger.Info
	}

	db, err := connect(ctx, dialector, level, cfg.ConnectAttempts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db, dialect: dialect, dir: dir, logger: logger}, nil
}

// DB возвращает подключение GORM
func (s *Storage) DB() *gorm.DB {
	return s.db
}

// Close закрывает пул соединений
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate применяет встроенные миграции для текущего диалекта
func (s *Storage) Migrate(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, s.dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(s.dialect, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		s.logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

func connect(ctx context.Context, dialector gorm.Dialector, level gormlogger.LogLevel, attempts int) (*gorm.DB, error) {
	var err error

	for range attempts {
		var db *gorm.DB
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(level),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.PingContext(ctx); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
