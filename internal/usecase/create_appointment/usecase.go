package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/m04kA/barbershop-booking/internal/catalog"
	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/internal/slots"
	"github.com/m04kA/barbershop-booking/pkg/dberrors"
	"github.com/m04kA/barbershop-booking/pkg/tracing"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// UseCase use case для записи клиента на слот
type UseCase struct {
	appointmentRepo      AppointmentRepository
	availabilityRepo     AvailabilityRepository
	barberRepo           BarberRepository
	catalog              ServiceCatalog
	notifier             Notifier
	metrics              Metrics
	txManager            TransactionManager
	timeProvider         TimeProvider
	logger               Logger
	defaultCountryPrefix string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	barberRepo BarberRepository,
	catalog ServiceCatalog,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
	defaultCountryPrefix string,
) *UseCase {
	return &UseCase{
		appointmentRepo:      appointmentRepo,
		availabilityRepo:     availabilityRepo,
		barberRepo:           barberRepo,
		catalog:              catalog,
		notifier:             notifier,
		metrics:              metrics,
		txManager:            txManager,
		timeProvider:         timeProvider,
		logger:               logger,
		defaultCountryPrefix: defaultCountryPrefix,
	}
}

// Execute выполняет use case записи.
// Проверка слота и вставка идут в сериализуемой транзакции, уникальный индекс
// подтверждённых записей закрывает оставшуюся гонку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	ctx, span := tracing.Tracer("usecase.create_appointment").Start(ctx, "CreateAppointment")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	uc.logger.Info("CreateAppointment: barber=%s, date=%s, time=%s, service=%v",
		req.BarberID, req.AppointmentDate, req.AppointmentTime, req.ServiceID)

	// 1. Валидация входных данных
	in, err := validateRequest(req, uc.defaultCountryPrefix)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("barber.id", in.barberID.String()),
		attribute.String("appointment.date", in.date.String()),
		attribute.String("appointment.time", in.time.String()),
	)

	// 2. Текущее время в зоне салона
	now := uc.timeProvider.Now()
	if in.date.Before(types.DateOf(now)) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", in.date)
		return nil, invalid("appointmentDate", "date must not be in the past")
	}

	// 3. Услуга из каталога
	var serviceName string
	if in.serviceID != nil {
		service, err := uc.catalog.Get(*in.serviceID)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%s not found", *in.serviceID)
				return nil, invalid("serviceId", "unknown service")
			}
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrStoreUnavailable, err)
		}
		serviceName = service.Name
	}

	// 4. Барбер
	barber, err := uc.barberRepo.GetByID(ctx, in.barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%s not found", in.barberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%s: %v", in.barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrStoreUnavailable, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("CreateAppointment: barber id=%s is inactive", in.barberID)
		return nil, ErrBarberNotFound
	}

	// 5. Время должно быть среди предлагаемых и не прошедших слотов.
	// Занятость проверяется ниже в транзакции, чтобы отличить конфликт от неверного времени.
	windows, err := uc.availabilityRepo.ListForDate(ctx, in.barberID, in.date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrStoreUnavailable, err)
	}
	offered := slots.Classify(slots.Resolve(windows, in.barberID, in.date), nil, in.date, now)
	if !slots.Offered(offered, in.time) {
		uc.logger.Warn("CreateAppointment: time %s is not offered for barber=%s on %s", in.time, in.barberID, in.date)
		return nil, ErrSlotNotOffered
	}

	appointment := &domain.Appointment{
		CustomerName:    in.name,
		CustomerEmail:   in.email,
		CustomerPhone:   in.phone,
		BarberID:        in.barberID,
		ServiceType:     in.serviceID,
		AppointmentDate: in.date,
		AppointmentTime: in.time,
		Status:          domain.StatusConfirmed,
	}

	// 6. Проверка и вставка в сериализуемой транзакции
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.FindConfirmed(txCtx, in.barberID, in.date, in.time)
		switch {
		case err == nil:
			uc.logger.Warn("CreateAppointment: slot %s %s already taken by appointment id=%s", in.date, in.time, existing.ID)
			return ErrSlotConflict
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		case errors.Is(err, appointmentRepo.ErrSerialization):
			return ErrSlotConflict
		default:
			return fmt.Errorf("%w: failed to check slot: %v", ErrStoreUnavailable, err)
		}

		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) || errors.Is(err, appointmentRepo.ErrSerialization) {
				uc.logger.Warn("CreateAppointment: concurrent booking won slot %s %s", in.date, in.time)
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrStoreUnavailable, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict), dberrors.IsSerializationFailure(err), dberrors.IsUniqueViolation(err):
			uc.metrics.IncSlotConflicts()
			return nil, ErrSlotConflict
		case errors.Is(err, ErrStoreUnavailable):
			uc.logger.Error("CreateAppointment: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction error: %v", err)
			return nil, fmt.Errorf("%w: transaction: %v", ErrStoreUnavailable, err)
		}
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("CreateAppointment: created appointment id=%s for barber=%s at %s %s",
		created.ID, in.barberID, in.date, in.time)

	// 7. Уведомление уходит в фоне, его ошибки не влияют на результат
	if err := uc.notifier.NotifyBooking(ctx, created, barber.Name, serviceName); err != nil {
		uc.logger.Warn("CreateAppointment: notification for appointment id=%s not queued: %v", created.ID, err)
	}

	return &Response{
		ID:              created.ID,
		CustomerName:    created.CustomerName,
		CustomerEmail:   created.CustomerEmail,
		CustomerPhone:   created.CustomerPhone,
		BarberID:        created.BarberID,
		BarberName:      barber.Name,
		ServiceID:       created.ServiceType,
		ServiceName:     serviceName,
		AppointmentDate: created.AppointmentDate,
		AppointmentTime: created.AppointmentTime,
		Status:          string(created.Status),
		CreatedAt:       created.CreatedAt,
	}, nil
}
