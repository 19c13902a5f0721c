package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/internal/slots"
	"github.com/m04kA/barbershop-booking/pkg/tracing"
)

// UseCase use case для получения слотов барбера на дату
type UseCase struct {
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	barberRepo       BarberRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		barberRepo:       barberRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	ctx, span := tracing.Tracer("usecase.get_available_slots").Start(ctx, "GetAvailableSlots")
	span.SetAttributes(
		attribute.String("barber.id", req.BarberID.String()),
		attribute.String("appointment.date", req.Date.String()),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	uc.logger.Info("GetAvailableSlots: barber=%s, date=%s", req.BarberID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в зоне салона
	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date)
		return nil, err
	}

	// 3. Барбер должен существовать и быть активным
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrStoreUnavailable, err)
	}
	if !barber.IsActive {
		uc.logger.Warn("GetAvailableSlots: barber id=%s is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 4. Окна доступности на дату
	windows, err := uc.availabilityRepo.ListForDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrStoreUnavailable, err)
	}

	raw := slots.Resolve(windows, req.BarberID, req.Date)
	if len(raw) == 0 {
		uc.logger.Info("GetAvailableSlots: barber=%s has no availability on %s", req.BarberID, req.Date)
		return &Response{BarberID: req.BarberID, Date: req.Date, Slots: nil}, nil
	}

	// 5. Занятые времена
	booked, err := uc.appointmentRepo.ListConfirmedTimes(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrStoreUnavailable, err)
	}

	// 6. Классификация
	classified := slots.Classify(raw, booked, req.Date, now)
	available := slots.CountAvailable(classified)

	span.SetAttributes(
		attribute.Int("slots.total", len(classified)),
		attribute.Int("slots.available", available),
	)
	uc.logger.Info("GetAvailableSlots: barber=%s, date=%s: %d/%d slots available",
		req.BarberID, req.Date, available, len(classified))

	return &Response{
		BarberID:       req.BarberID,
		Date:           req.Date,
		Slots:          classified,
		AvailableCount: available,
		TotalCount:     len(classified),
	}, nil
}
