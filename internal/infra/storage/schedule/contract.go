package schedule

import "github.com/tcsoares1914/test-gbi-backend/pkg/dbmetrics"

// Executor interfaces are shared with dbmetrics so the repository works
// both with a plain *sql.DB and the instrumented wrapper, inside or
// outside a transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
