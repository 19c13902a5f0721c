package list_appointments

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type fakeService struct {
	got *models.ListRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestHandle_PassesQuery(t *testing.T) {
	barberID := uuid.New()
	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/appointments?scope=upcoming&status=confirmed&sortBy=customer&order=asc&barberId="+barberID.String(), nil)
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Discard()).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())
	require.NotNil(t, svc.got)
	assert.Equal(t, "upcoming", svc.got.Scope)
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.Equal(t, "customer", svc.got.SortBy)
	assert.Equal(t, "asc", svc.got.Order)
	assert.Equal(t, barberID, *svc.got.BarberID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
		want  int
	}{
		{name: "bad barber id", query: "?barberId=7", want: http.StatusBadRequest},
		{name: "unknown scope", query: "?scope=yesterday", err: fmt.Errorf("%w: unknown scope", appointments.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "store down", err: appointments.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&fakeService{err: tt.err}, logger.Discard()).
				Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments"+tt.query, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
