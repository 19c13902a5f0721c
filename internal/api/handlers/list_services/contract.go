package list_services

import "github.com/m04kA/barbershop-booking/internal/domain"

type ServiceCatalog interface {
	List(category *domain.ServiceCategory) []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
