package appointment

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

const table = "appointments"

var columns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"barber_id",
	"service_type",
	"appointment_date",
	"appointment_time",
	"status",
	"created_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db      DBExecutor
	builder psqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, builder psqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// Create сохраняет запись. ID и CreatedAt заполняются, если не заданы.
// Если в контексте есть транзакция, запрос выполняется в ней.
// Нарушение уникальности подтверждённого слота возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.builder.Insert(table).
		Columns(columns...).
		Values(
			a.ID,
			a.CustomerName,
			a.CustomerEmail,
			a.CustomerPhone,
			a.BarberID,
			a.ServiceType,
			a.AppointmentDate,
			a.AppointmentTime,
			a.Status,
			a.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, classifyWriteError("Create", err)
	}

	return a, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// FindConfirmed ищет подтверждённую запись на слот барбера.
// Возвращает ErrAppointmentNotFound, если слот свободен.
// В транзакции строка блокируется (FOR UPDATE), если драйвер это поддерживает.
func (r *Repository) FindConfirmed(ctx context.Context, barberID uuid.UUID, date types.Date, t types.TimeString) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.builder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"barber_id":        barberID,
			"appointment_date": date,
			"appointment_time": t,
			"status":           domain.StatusConfirmed,
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = r.builder.ForUpdate(selectBuilder)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindConfirmed - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		if dberrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: FindConfirmed: %v", ErrSerialization, err)
		}
		return nil, fmt.Errorf("%w: FindConfirmed - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// ListConfirmedTimes занятые (confirmed) времена барбера на дату, по возрастанию
func (r *Repository) ListConfirmedTimes(ctx context.Context, barberID uuid.UUID, date types.Date) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("appointment_time").
		From(table).
		Where(squirrel.Eq{
			"barber_id":        barberID,
			"appointment_date": date,
			"status":           domain.StatusConfirmed,
		}).
		OrderBy("appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListConfirmedTimes - scan row: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// List записи по фильтру: сначала ближайшие даты, внутри дня по времени
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.builder.Select(columns...).From(table)

	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.ToDate})
	}
	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("appointment_date ASC", "appointment_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus меняет статус записи.
// Повторное подтверждение на уже занятый слот возвращается как ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyWriteError("UpdateStatus", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func classifyWriteError(op string, err error) error {
	switch {
	case dberrors.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s: %v", ErrSlotTaken, op, err)
	case dberrors.IsSerializationFailure(err):
		return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a           domain.Appointment
		serviceType sql.NullString
		status      string
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.CustomerName,
		&a.CustomerEmail,
		&a.CustomerPhone,
		&a.BarberID,
		&serviceType,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if serviceType.Valid {
		a.ServiceType = &serviceType.String
	}
	a.Status = domain.AppointmentStatus(status)
	a.CreatedAt = createdAt.Time

	return &a, nil
}
