package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dberrors"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

const table = "barber_availability"

var columns = []string{
	"id",
	"barber_id",
	"from_date",
	"to_date",
	"start_time",
	"end_time",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий окон доступности барберов
type Repository struct {
	db      DBExecutor
	builder psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor, builder psqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// Create создает окно доступности
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now

	query, args, err := r.builder.Insert(table).
		Columns(columns...).
		Values(
			w.ID,
			w.BarberID,
			w.FromDate,
			w.ToDate,
			w.StartTime,
			w.EndTime,
			w.IsAvailable,
			w.CreatedAt,
			w.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrDuplicateWindow, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return w, nil
}

// Update перезаписывает часы и флаг доступности окна по ID
func (r *Repository) Update(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	w.UpdatedAt = time.Now().UTC()

	query, args, err := r.builder.Update(table).
		Set("start_time", w.StartTime).
		Set("end_time", w.EndTime).
		Set("is_available", w.IsAvailable).
		Set("updated_at", w.UpdatedAt).
		Where(squirrel.Eq{"id": w.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrWindowNotFound
	}

	return w, nil
}

// GetByID получает окно по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityWindow, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByKey получает окно по естественному ключу (барбер, начало, конец)
func (r *Repository) GetByKey(ctx context.Context, barberID uuid.UUID, from, to types.Date) (*domain.AvailabilityWindow, error) {
	return r.getOne(ctx, "GetByKey", squirrel.Eq{
		"barber_id": barberID,
		"from_date": from,
		"to_date":   to,
	})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.builder.Select(columns...).
		From(table).
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = r.builder.ForUpdate(selectBuilder)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	w, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan window: %v", ErrScanRow, op, err)
	}

	return w, nil
}

// ListByBarber все окна барбера, по дате начала
func (r *Repository) ListByBarber(ctx context.Context, barberID uuid.UUID) ([]*domain.AvailabilityWindow, error) {
	return r.list(ctx, "ListByBarber", squirrel.Eq{"barber_id": barberID})
}

// ListForDate активные окна барбера, покрывающие дату
func (r *Repository) ListForDate(ctx context.Context, barberID uuid.UUID, date types.Date) ([]*domain.AvailabilityWindow, error) {
	return r.list(ctx, "ListForDate", squirrel.And{
		squirrel.Eq{"barber_id": barberID, "is_available": true},
		squirrel.LtOrEq{"from_date": date},
		squirrel.GtOrEq{"to_date": date},
	})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("from_date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return windows, nil
}

// Delete удаляет окно по ID
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(row rowScanner) (*domain.AvailabilityWindow, error) {
	var (
		w         domain.AvailabilityWindow
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&w.ID,
		&w.BarberID,
		&w.FromDate,
		&w.ToDate,
		&w.StartTime,
		&w.EndTime,
		&w.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}
