// Package txmanager runs functions inside serializable transactions over
// an instrumented dbmetrics.DB. The slot admission flow depends on this:
// the availability probe and the insert must commit atomically, otherwise
// two concurrent requests can both pass the conflict check.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/tcsoares1914/test-gbi-backend/pkg/dbmetrics"
)

// serialization_failure: the transaction must be retried by the client.
const pqSerializationFailure = "40001"

const maxRetries = 3

// ErrTransaction wraps failures of the transaction machinery itself.
var ErrTransaction = errors.New("txmanager: transaction error")

// TransactionManager executes functions inside serializable transactions.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over an instrumented DB.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a transaction with SERIALIZABLE
// isolation. The transaction executor is placed into the context passed
// to fn, so repository calls made with it join the transaction. On
// serialization failure (SQLSTATE 40001) the whole function is retried.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = m.runOnce(ctx, fn)
		if lastErr == nil || !isSerializationFailure(lastErr) {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrTransaction, ctx.Err())
		case <-time.After(time.Duration(attempt+1) * 10 * time.Millisecond):
		}
	}

	return fmt.Errorf("%w: serialization retries exhausted: %v", ErrTransaction, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		// Keep the driver error in the chain: serialization failures
		// often surface at commit and must stay detectable for retry.
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
