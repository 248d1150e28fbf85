package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// txKey carries the transaction handle through the context so every
// repository call inside a TxManager.Transaction joins the same
// transaction.
type txKey struct{}

// getDB returns the transaction from the context when present, the plain
// connection otherwise.
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

// isDuplicateError reports whether err is a MySQL unique index violation
// (error 1062, "Duplicate entry").
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
