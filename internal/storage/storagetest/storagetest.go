// Package storagetest поднимает файловую SQLite в t.TempDir() с применёнными миграциями.
package storagetest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/overtime-api/internal/config"
	"github.com/overtime-api/internal/storage"
	"github.com/stretchr/testify/require"
)

// Logger возвращает логгер, который ничего не пишет
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Config возвращает настройки БД во временной директории теста
func Config(t testing.TB) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "db", "test.db"),
		ConnectAttempts: 1,
	}
}

// New открывает, мигрирует и заполняет справочниками новую БД
func New(t testing.TB) *storage.Storage {
	t.Helper()
	ctx := context.Background()

	st, err := storage.Open(ctx, Config(t), Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Migrate(ctx))
	require.NoError(t, st.Seed(ctx))

	return st
}
