package postgresql

import (
	"context"

	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
)

// GetQuerier returns either the transaction stored on the context or the pool.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFromContext(ctx); ok {
		return tx
	}
	return db.Pool
}
