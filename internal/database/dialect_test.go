package database

import (
	"errors"
	"testing"
)

func TestNewDialect(t *testing.T) {
	if _, ok := NewDialect(DialectSQLite).(*SQLiteDialect); !ok {
		t.Error("NewDialect(sqlite) did not return a SQLiteDialect")
	}
	if _, ok := NewDialect(DialectPostgres).(*PostgresDialect); !ok {
		t.Error("NewDialect(postgres) did not return a PostgresDialect")
	}
	if _, ok := NewDialect("unknown").(*SQLiteDialect); !ok {
		t.Error("NewDialect(unknown) did not default to SQLiteDialect")
	}
}

func TestPlaceholders(t *testing.T) {
	sqlite := &SQLiteDialect{}
	if got := sqlite.Placeholder(3); got != "?" {
		t.Errorf("SQLite Placeholder(3) = %q, want %q", got, "?")
	}

	pg := &PostgresDialect{}
	if got := pg.Placeholder(3); got != "$3" {
		t.Errorf("Postgres Placeholder(3) = %q, want %q", got, "$3")
	}
}

func TestQueryBuilderBuild(t *testing.T) {
	query := "SELECT snapshot FROM saves WHERE slot = ? AND seed = ?"

	sqlite := NewQueryBuilder(&SQLiteDialect{})
	if got := sqlite.Build(query); got != query {
		t.Errorf("SQLite Build() = %q, want unchanged", got)
	}

	pg := NewQueryBuilder(&PostgresDialect{})
	want := "SELECT snapshot FROM saves WHERE slot = $1 AND seed = $2"
	if got := pg.Build(query); got != want {
		t.Errorf("Postgres Build() = %q, want %q", got, want)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	sqlite := &SQLiteDialect{}
	if !sqlite.IsDuplicateKeyError(errors.New("UNIQUE constraint failed: saves.slot")) {
		t.Error("SQLite unique violation not detected")
	}
	if sqlite.IsDuplicateKeyError(nil) {
		t.Error("nil error reported as duplicate key")
	}

	pg := &PostgresDialect{}
	if !pg.IsDuplicateKeyError(errors.New(`pq: duplicate key value violates unique constraint "saves_pkey"`)) {
		t.Error("Postgres unique violation not detected")
	}
	if pg.IsDuplicateKeyError(errors.New("connection refused")) {
		t.Error("unrelated error reported as duplicate key")
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := DefaultConfig("/tmp/saves.db")
	if cfg.DialectType() != DialectSQLite {
		t.Errorf("DialectType() = %q, want sqlite", cfg.DialectType())
	}
	if cfg.DSN() != "/tmp/saves.db" {
		t.Errorf("DSN() = %q, want the sqlite path", cfg.DSN())
	}

	cfg.Driver = "postgres"
	cfg.Postgres.User = "hero"
	cfg.Postgres.Database = "dungeon"
	want := "host=localhost port=5432 user=hero password= dbname=dungeon sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
