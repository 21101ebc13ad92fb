// Package testutil holds helpers shared by integration tests.
package testutil

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// OpenTestDB connects to the database named by TEST_DATABASE_URL. Tests
// that need a real PostgreSQL are skipped when the variable is unset, so
// the unit suite stays runnable without infrastructure.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
