package db_test

import (
	"context"
	"testing"

	dbfs "mentorlink/db"
	"mentorlink/internal/db"
)

// Migrate must be safe to run on every startup: applying the embedded
// migrations twice against the same database must not error or lose data.
func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	// insert a row, migrate again, row must survive
	if _, err := d.Exec(ctx, `INSERT INTO accounts (name, email, password_hash, role, created_at, updated_at) VALUES ('A', 'a@example.com', 'h', 'mentor', 0, 0)`); err != nil {
		t.Fatalf("insert account: %v", err)
	}

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("scan schema_migrations count: %v", err)
	}
	if count < 1 {
		t.Fatalf("expected at least 1 migration recorded, got %d", count)
	}

	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM accounts`).Scan(&count); err != nil {
		t.Fatalf("scan accounts count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected inserted account to survive re-migration, got %d rows", count)
	}

	// both tables from the embedded migrations must exist
	for _, table := range []string{"accounts", "connection_events"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("expected %s table to exist: %v", table, err)
		}
	}
}
