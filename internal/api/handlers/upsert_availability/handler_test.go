package upsert_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/service/availability"
	"github.com/m04kA/barbershop-booking/internal/service/availability/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type fakeService struct {
	got *models.UpsertRequest
	err error
}

func (f *fakeService) Upsert(_ context.Context, barberID uuid.UUID, req *models.UpsertRequest) (*models.WindowResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.WindowResponse{ID: uuid.New(), BarberID: barberID, FromDate: req.FromDate, ToDate: req.ToDate}, nil
}

const window = `{"fromDate":"2026-03-01","toDate":"2026-03-31","startTime":"09:00","endTime":"17:00","isAvailable":true}`

func doRequest(svc AvailabilityService, barberID, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/barbers/"+barberID+"/availability", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"barberId": barberID})
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	rec := doRequest(svc, uuid.NewString(), window)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "09:00", svc.got.StartTime)
	assert.True(t, svc.got.IsAvailable)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		barberID string
		payload  string
		err      error
		want     int
	}{
		{name: "bad barber id", barberID: "x", payload: window, want: http.StatusBadRequest},
		{name: "empty body", barberID: uuid.NewString(), payload: "", want: http.StatusBadRequest},
		{name: "invalid window", barberID: uuid.NewString(), payload: window, err: fmt.Errorf("%w: start after end", availability.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "unknown barber", barberID: uuid.NewString(), payload: window, err: availability.ErrBarberNotFound, want: http.StatusNotFound},
		{name: "store down", barberID: uuid.NewString(), payload: window, err: availability.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeService{err: tt.err}, tt.barberID, tt.payload)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
