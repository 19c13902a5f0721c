// Package storagetest поднимает SQLite в памяти со схемой сервиса для тестов репозиториев.
package storagetest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/m04kA/barbershop-booking/internal/infra/storage/sqliteschema"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

// Builder построитель запросов для базы из Open
func Builder() psqlbuilder.Builder {
	return psqlbuilder.New(psqlbuilder.DriverSQLite)
}

// Open открывает пустую базу со схемой
func Open(t testing.TB) *dbmetrics.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })

	if err := sqliteschema.Apply(context.Background(), raw); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return dbmetrics.Wrap(raw, nil)
}

// InsertBarber добавляет барбера и возвращает его ID
func InsertBarber(t testing.TB, db *dbmetrics.DB, name string, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO barbers (id, name, is_active, created_at) VALUES (?, ?, ?, ?)`,
		id.String(), name, active, time.Now().UTC())
	if err != nil {
		t.Fatalf("insert barber: %v", err)
	}
	return id
}

// InsertAdmin добавляет администратора
func InsertAdmin(t testing.TB, db *dbmetrics.DB, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO admin_users (user_id, is_active, created_at) VALUES (?, ?, ?)`,
		id.String(), active, time.Now().UTC())
	if err != nil {
		t.Fatalf("insert admin: %v", err)
	}
	return id
}
