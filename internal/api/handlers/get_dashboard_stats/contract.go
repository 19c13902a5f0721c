package get_dashboard_stats

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
)

type StatsService interface {
	Stats(ctx context.Context) (*models.DashboardStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
