package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside a database transaction. The
// transaction handle travels through the context, so repository calls made
// with the callback's context all hit the same transaction; returning an
// error rolls everything back.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction executes fn in one transaction, committing on nil and
// rolling back on error. Nested calls reuse GORM savepoints.
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
