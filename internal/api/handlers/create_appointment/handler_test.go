package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	createAppointment "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

type fakeUseCase struct {
	got  *createAppointment.Request
	resp *createAppointment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{
	"customerName": "Mads Jensen",
	"customerEmail": "mads@example.dk",
	"customerPhone": "12 34 56 78",
	"barberId": "7b0c3a5e-8a51-4d43-9f0e-3d3c8e1a2b4c",
	"serviceId": "classic-cut",
	"appointmentDate": "2026-03-10",
	"appointmentTime": "10:00"
}`

func doRequest(t *testing.T, uc CreateAppointmentUseCase, payload, acceptLanguage string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(payload))
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	barberID := uuid.MustParse("7b0c3a5e-8a51-4d43-9f0e-3d3c8e1a2b4c")
	serviceID := "classic-cut"
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:              uuid.New(),
		CustomerName:    "Mads Jensen",
		CustomerEmail:   "mads@example.dk",
		CustomerPhone:   "+4512345678",
		BarberID:        barberID,
		BarberName:      "Ali",
		ServiceID:       &serviceID,
		ServiceName:     "Classic Haircut",
		AppointmentDate: types.MustDate("2026-03-10"),
		AppointmentTime: types.MustTimeString("10:00"),
		Status:          "confirmed",
		CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, body, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "12 34 56 78", uc.got.CustomerPhone)
	assert.Equal(t, "classic-cut", *uc.got.ServiceID)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "+4512345678", resp.CustomerPhone)
	assert.Equal(t, "2026-03-10", resp.AppointmentDate)
	assert.Equal(t, "10:00", resp.AppointmentTime)
	assert.Equal(t, "Ali", resp.BarberName)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		lang       string
		err        error
		wantStatus int
		wantBody   handlers.ErrorResponse
	}{
		{
			name:       "malformed body",
			payload:    `{"customerName":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   handlers.ErrorResponse{Error: msgInvalidRequestBody},
		},
		{
			name:       "validation error keeps field",
			payload:    body,
			err:        fmt.Errorf("wrapped: %w", &createAppointment.ValidationError{Field: "customerEmail", Message: "invalid email address"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   handlers.ErrorResponse{Error: "invalid email address", Field: "customerEmail"},
		},
		{
			name:       "barber not found",
			payload:    body,
			lang:       "en",
			err:        createAppointment.ErrBarberNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   handlers.ErrorResponse{Error: "Barber not found."},
		},
		{
			name:       "slot conflict in danish by default",
			payload:    body,
			err:        createAppointment.ErrSlotConflict,
			wantStatus: http.StatusConflict,
			wantBody:   handlers.ErrorResponse{Error: "Dette tidspunkt er allerede booket, vælg venligst et andet."},
		},
		{
			name:       "slot conflict in english",
			payload:    body,
			lang:       "en-GB,en;q=0.9",
			err:        createAppointment.ErrSlotConflict,
			wantStatus: http.StatusConflict,
			wantBody:   handlers.ErrorResponse{Error: "This time slot has already been booked, please choose another."},
		},
		{
			name:       "slot not offered",
			payload:    body,
			lang:       "en",
			err:        createAppointment.ErrSlotNotOffered,
			wantStatus: http.StatusConflict,
			wantBody:   handlers.ErrorResponse{Error: "The selected time is not available for this barber."},
		},
		{
			name:       "store unavailable",
			payload:    body,
			lang:       "en",
			err:        fmt.Errorf("%w: FindConfirmed: timeout", createAppointment.ErrStoreUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   handlers.ErrorResponse{Error: "Service temporarily unavailable, please try again."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, tt.payload, tt.lang)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}
