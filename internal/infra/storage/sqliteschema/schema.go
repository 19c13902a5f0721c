// Package sqliteschema схема базы для драйвера sqlite (локальный запуск и тесты).
// Для Postgres схема лежит в migrations/.
package sqliteschema

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema схема для SQLite: даты и время хранятся текстом.
// Повторное применение ничего не меняет.
const Schema = `
CREATE TABLE IF NOT EXISTS barbers (
    id         TEXT PRIMARY KEY,
    name       TEXT      NOT NULL,
    is_active  BOOLEAN   NOT NULL DEFAULT 1,
    photo_path TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS admin_users (
    user_id    TEXT PRIMARY KEY,
    is_active  BOOLEAN   NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS barber_availability (
    id           TEXT PRIMARY KEY,
    barber_id    TEXT      NOT NULL,
    from_date    TEXT      NOT NULL,
    to_date      TEXT      NOT NULL,
    start_time   TEXT      NOT NULL,
    end_time     TEXT      NOT NULL,
    is_available BOOLEAN   NOT NULL DEFAULT 1,
    created_at   TIMESTAMP NOT NULL,
    updated_at   TIMESTAMP NOT NULL,
    UNIQUE (barber_id, from_date, to_date)
);

CREATE TABLE IF NOT EXISTS appointments (
    id               TEXT PRIMARY KEY,
    customer_name    TEXT      NOT NULL,
    customer_email   TEXT      NOT NULL,
    customer_phone   TEXT      NOT NULL,
    barber_id        TEXT      NOT NULL,
    service_type     TEXT,
    appointment_date TEXT      NOT NULL,
    appointment_time TEXT      NOT NULL,
    status           TEXT      NOT NULL,
    created_at       TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_confirmed_slot
    ON appointments (barber_id, appointment_date, appointment_time)
    WHERE status = 'confirmed';
`

// Apply создаёт недостающие таблицы и индексы
func Apply(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("sqliteschema: apply: %w", err)
	}
	return nil
}
