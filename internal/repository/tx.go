package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor выполняет функцию в одной транзакции БД.
// Репозитории, вызванные с полученным контекстом, работают внутри этой транзакции.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor создаёт новый экземпляр Transactor
func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn возвращает транзакцию из контекста или общее подключение
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// exists проверяет наличие строки модели с указанным id
func exists(ctx context.Context, db *gorm.DB, model any, id int64) (bool, error) {
	var count int64
	err := conn(ctx, db).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
