package barbers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrStoreUnavailable возвращается при ошибках хранилища
var ErrStoreUnavailable = errors.New("barbers: store unavailable")

// BarberResponse барбер для шага выбора мастера
type BarberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PhotoPath *string   `json:"photoPath,omitempty"`
}

// Service сервис барберов
type Service struct {
	barberRepo BarberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса барберов
func NewService(barberRepo BarberRepository, logger Logger) *Service {
	return &Service{barberRepo: barberRepo, logger: logger}
}

// ListActive активные барберы по имени
func (s *Service) ListActive(ctx context.Context) ([]BarberResponse, error) {
	barbers, err := s.barberRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrStoreUnavailable, err)
	}

	resp := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		resp = append(resp, BarberResponse{ID: b.ID, Name: b.Name, PhotoPath: b.PhotoPath})
	}

	s.logger.Info("ListActive: fetched %d barbers", len(resp))
	return resp, nil
}
