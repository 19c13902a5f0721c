package appointments

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// upcomingStatsDays горизонт счётчика ближайших записей
const upcomingStatsDays = 7

// Service сервис записей для панели администратора
type Service struct {
	appointmentRepo  AppointmentRepository
	barberRepo       BarberRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		barberRepo:       barberRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// List возвращает записи по вкладке (today, upcoming, all) и статусу с сортировкой.
// upcoming начинается с завтрашнего дня.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: scope=%q, status=%v, sortBy=%q, order=%q", req.Scope, ptr.Value(req.Status), req.SortBy, req.Order)

	filter, err := s.buildFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid request: %v", err)
		return nil, err
	}

	sortBy, order, err := sortParams(req)
	if err != nil {
		s.logger.Warn("List: invalid sort: %v", err)
		return nil, err
	}

	items, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStoreUnavailable, err)
	}

	names, err := s.barberNames(ctx, items)
	if err != nil {
		return nil, err
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(items)),
	}
	for _, a := range items {
		resp.Appointments = append(resp.Appointments, *models.FromDomainAppointment(a, names[a.BarberID]))
	}

	sortAppointments(resp.Appointments, sortBy, order)

	s.logger.Info("List: fetched %d appointments", len(resp.Appointments))
	return resp, nil
}

// Stats сводка для шапки панели: записи на сегодня, записи на ближайшую неделю
// (с завтрашнего дня) и активные барберы, работающие сегодня.
func (s *Service) Stats(ctx context.Context) (*models.DashboardStatsResponse, error) {
	today := types.DateOf(s.timeProvider.Now())
	s.logger.Info("Stats: date=%s", today)

	todayItems, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		FromDate: ptr.Ptr(today),
		ToDate:   ptr.Ptr(today),
	})
	if err != nil {
		s.logger.Error("Stats: failed to list today's appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - today's appointments: %v", ErrStoreUnavailable, err)
	}

	upcoming, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		FromDate: ptr.Ptr(today.AddDays(1)),
		ToDate:   ptr.Ptr(today.AddDays(upcomingStatsDays)),
	})
	if err != nil {
		s.logger.Error("Stats: failed to list upcoming appointments: %v", err)
		return nil, fmt.Errorf("%w: Stats - upcoming appointments: %v", ErrStoreUnavailable, err)
	}

	barbers, err := s.barberRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to list active barbers: %v", err)
		return nil, fmt.Errorf("%w: Stats - active barbers: %v", ErrStoreUnavailable, err)
	}

	resp := &models.DashboardStatsResponse{
		Date:          today.String(),
		TodayTotal:    len(todayItems),
		UpcomingWeek:  len(upcoming),
		ActiveBarbers: len(barbers),
	}
	for _, a := range todayItems {
		if a.Status == domain.StatusConfirmed {
			resp.TodayConfirmed++
		}
	}
	for _, b := range barbers {
		windows, err := s.availabilityRepo.ListForDate(ctx, b.ID, today)
		if err != nil {
			s.logger.Error("Stats: failed to get availability for barber=%s: %v", b.ID, err)
			return nil, fmt.Errorf("%w: Stats - availability: %v", ErrStoreUnavailable, err)
		}
		if len(windows) > 0 {
			resp.BarbersAvailableToday++
		}
	}

	s.logger.Info("Stats: today=%d (confirmed=%d), upcoming=%d, barbers available today=%d/%d",
		resp.TodayTotal, resp.TodayConfirmed, resp.UpcomingWeek, resp.BarbersAvailableToday, resp.ActiveBarbers)
	return resp, nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStoreUnavailable, err)
	}

	names, err := s.barberNames(ctx, []*domain.Appointment{a})
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(a, names[a.BarberID]), nil
}

// UpdateStatus переводит запись в новый статус по правилам переходов.
// Повторное подтверждение отменённой записи на занятый слот даёт ErrSlotConflict.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	next := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !next.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	s.logger.Info("UpdateStatus: appointment id=%s -> %s", id, next)

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		a, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get appointment: %v", ErrStoreUnavailable, err)
		}

		if !a.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, next)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, next); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrSlotTaken), errors.Is(err, appointmentRepo.ErrSerialization):
				return ErrSlotConflict
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			default:
				return fmt.Errorf("%w: UpdateStatus - update: %v", ErrStoreUnavailable, err)
			}
		}

		a.Status = next
		updated = a
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrSlotConflict):
			s.logger.Warn("UpdateStatus: appointment id=%s: %v", id, err)
			return nil, err
		case errors.Is(err, ErrStoreUnavailable):
			s.logger.Error("UpdateStatus: appointment id=%s: %v", id, err)
			return nil, err
		default:
			s.logger.Error("UpdateStatus: transaction error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrStoreUnavailable, err)
		}
	}

	names, err := s.barberNames(ctx, []*domain.Appointment{updated})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, next)
	return models.FromDomainAppointment(updated, names[updated.BarberID]), nil
}

func (s *Service) buildFilter(req *models.ListRequest) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{BarberID: req.BarberID}
	today := types.DateOf(s.timeProvider.Now())

	switch domain.AppointmentScope(req.Scope) {
	case "", domain.ScopeAll:
	case domain.ScopeToday:
		filter.FromDate = ptr.Ptr(today)
		filter.ToDate = ptr.Ptr(today)
	case domain.ScopeUpcoming:
		filter.FromDate = ptr.Ptr(today.AddDays(1))
	default:
		return filter, fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, req.Scope)
	}

	if req.Status != nil && *req.Status != "" && *req.Status != "all" {
		status := domain.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// barberNames имена барберов для записей; удалённый барбер остаётся без имени
func (s *Service) barberNames(ctx context.Context, items []*domain.Appointment) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string)
	for _, a := range items {
		if _, ok := names[a.BarberID]; ok {
			continue
		}
		b, err := s.barberRepo.GetByID(ctx, a.BarberID)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBarberNotFound) {
				names[a.BarberID] = ""
				continue
			}
			s.logger.Error("barberNames: failed to get barber id=%s: %v", a.BarberID, err)
			return nil, fmt.Errorf("%w: barber lookup: %v", ErrStoreUnavailable, err)
		}
		names[a.BarberID] = b.Name
	}
	return names, nil
}

func sortParams(req *models.ListRequest) (string, string, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = models.SortByDate
	}
	switch sortBy {
	case models.SortByDate, models.SortByTime, models.SortByCustomer, models.SortByBarber, models.SortByStatus:
	default:
		return "", "", fmt.Errorf("%w: unknown sortBy %q", ErrInvalidInput, req.SortBy)
	}

	order := req.Order
	if order == "" {
		order = models.OrderDesc
	}
	if order != models.OrderAsc && order != models.OrderDesc {
		return "", "", fmt.Errorf("%w: unknown order %q", ErrInvalidInput, req.Order)
	}

	return sortBy, order, nil
}

// sortAppointments стабильная сортировка; имена сравниваются по правилам датского алфавита
func sortAppointments(items []models.AppointmentResponse, sortBy, order string) {
	names := collate.New(language.Danish, collate.IgnoreCase)

	cmp := func(a, b models.AppointmentResponse) int {
		switch sortBy {
		case models.SortByTime:
			return strings.Compare(a.AppointmentTime, b.AppointmentTime)
		case models.SortByCustomer:
			return names.CompareString(a.CustomerName, b.CustomerName)
		case models.SortByBarber:
			return names.CompareString(a.BarberName, b.BarberName)
		case models.SortByStatus:
			return strings.Compare(a.Status, b.Status)
		default:
			return strings.Compare(a.AppointmentDate, b.AppointmentDate)
		}
	}

	slices.SortStableFunc(items, func(a, b models.AppointmentResponse) int {
		if order == models.OrderDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
}
