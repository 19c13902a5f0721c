package list_services

import (
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/locale"
)

// ServiceResponse услуга каталога на языке клиента
type ServiceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог в HTTP ответ
func FromDomainServices(services []domain.Service, lang locale.Lang) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for i := range services {
		s := &services[i]
		tags := s.LocalizedTags(string(lang))
		if tags == nil {
			tags = []string{}
		}
		result = append(result, ServiceResponse{
			ID:          s.ID,
			Name:        s.LocalizedName(string(lang)),
			Description: s.LocalizedDescription(string(lang)),
			Price:       s.Price,
			Category:    string(s.Category),
			Duration:    s.Duration,
			Tags:        tags,
			Featured:    s.Featured,
		})
	}
	return &ServiceListResponse{Services: result}
}
