// Package testsupport holds helpers shared by tests that need a database.
package testsupport

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// SQLiteMemoryDSN returns a shared-cache in-memory DSN private to name, so
// parallel tests never see each other's tables.
func SQLiteMemoryDSN(name string) string {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	return "file:" + name + "?mode=memory&cache=shared"
}

// NewSQLiteMemoryDB opens a bun database on SQLiteMemoryDSN(t.Name()) and
// closes it when the test ends.
func NewSQLiteMemoryDB(t testing.TB) *bun.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", SQLiteMemoryDSN(t.Name()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db
}
