package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

const table = "barbers"

var columns = []string{"id", "name", "is_active", "photo_path"}

// Repository репозиторий барберов (только чтение)
type Repository struct {
	db      DBExecutor
	builder psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor, builder psqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// GetByID получает барбера по ID, включая неактивных
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListActive активные барберы по имени
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var (
		b         domain.Barber
		photoPath sql.NullString
	)

	if err := row.Scan(&b.ID, &b.Name, &b.IsActive, &photoPath); err != nil {
		return nil, err
	}
	if photoPath.Valid {
		b.PhotoPath = &photoPath.String
	}

	return &b, nil
}
