package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	availabilityRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/internal/service/availability/models"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Service сервис окон доступности барберов
type Service struct {
	availabilityRepo AvailabilityRepository
	barberRepo       BarberRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		barberRepo:       barberRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// ListByBarber возвращает все окна барбера и признак availableToday
func (s *Service) ListByBarber(ctx context.Context, barberID uuid.UUID) (*models.BarberAvailabilityResponse, error) {
	s.logger.Info("ListByBarber: barber=%s", barberID)

	if err := s.ensureBarber(ctx, barberID); err != nil {
		return nil, err
	}

	windows, err := s.availabilityRepo.ListByBarber(ctx, barberID)
	if err != nil {
		s.logger.Error("ListByBarber: repository error for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: ListByBarber - repository error: %v", ErrStoreUnavailable, err)
	}

	today := types.DateOf(s.timeProvider.Now())
	resp := &models.BarberAvailabilityResponse{
		BarberID: barberID,
		Windows:  make([]models.WindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		if w.IsAvailable && w.Covers(today) {
			resp.AvailableToday = true
		}
		resp.Windows = append(resp.Windows, *models.FromDomainWindow(w))
	}

	s.logger.Info("ListByBarber: fetched %d windows for barber=%s", len(windows), barberID)
	return resp, nil
}

// Upsert создает окно или перезаписывает существующее с тем же ключом.
// Последняя запись побеждает.
func (s *Service) Upsert(ctx context.Context, barberID uuid.UUID, req *models.UpsertRequest) (*models.WindowResponse, error) {
	s.logger.Info("Upsert: barber=%s, range=%s..%s, hours=%s-%s, available=%t",
		barberID, req.FromDate, req.ToDate, req.StartTime, req.EndTime, req.IsAvailable)

	window, err := req.ToDomainWindow(barberID)
	if err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureBarber(ctx, barberID); err != nil {
		return nil, err
	}

	saved, err := s.upsertWindow(ctx, window)
	if errors.Is(err, availabilityRepo.ErrDuplicateWindow) {
		// Параллельная запись создала окно с тем же ключом. Повтор найдёт его и перезапишет.
		s.logger.Warn("Upsert: concurrent create for barber=%s, range=%s..%s, retrying as update",
			barberID, window.FromDate, window.ToDate)
		saved, err = s.upsertWindow(ctx, window)
	}
	if err != nil {
		s.logger.Error("Upsert: failed for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: Upsert - transaction: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Upsert: saved window id=%s for barber=%s", saved.ID, barberID)
	return models.FromDomainWindow(saved), nil
}

// Delete удаляет окно по ID
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: window id=%s", id)

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%s not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Delete: window id=%s deleted", id)
	return nil
}

func (s *Service) upsertWindow(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	var saved *domain.AvailabilityWindow
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.availabilityRepo.GetByKey(txCtx, window.BarberID, window.FromDate, window.ToDate)
		switch {
		case errors.Is(err, availabilityRepo.ErrWindowNotFound):
			saved, err = s.availabilityRepo.Create(txCtx, window)
			return err
		case err != nil:
			return err
		}

		existing.StartTime = window.StartTime
		existing.EndTime = window.EndTime
		existing.IsAvailable = window.IsAvailable
		saved, err = s.availabilityRepo.Update(txCtx, existing)
		return err
	})
	return saved, err
}

func (s *Service) ensureBarber(ctx context.Context, barberID uuid.UUID) error {
	if _, err := s.barberRepo.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("barber id=%s not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("failed to get barber id=%s: %v", barberID, err)
		return fmt.Errorf("%w: barber lookup: %v", ErrStoreUnavailable, err)
	}
	return nil
}
