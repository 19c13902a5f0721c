package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

// Repository репозиторий администраторов панели
type Repository struct {
	db      DBExecutor
	builder psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor, builder psqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// IsActiveAdmin есть ли у пользователя активная запись в admin_users
func (r *Repository) IsActiveAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("is_active").
		From("admin_users").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsActiveAdmin - build select query: %v", ErrBuildQuery, err)
	}

	var active bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsActiveAdmin - scan row: %v", ErrScanRow, err)
	}

	return active, nil
}
