package loan

import (
	"context"
)

// Transactor runs fn inside one storage transaction; every repository call
// made with the context fn receives joins that transaction. Implemented by
// the mysql TxManager; tests substitute a pass-through.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
