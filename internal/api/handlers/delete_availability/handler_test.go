package delete_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/internal/service/availability"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Delete(context.Context, uuid.UUID) error {
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{name: "deleted", id: uuid.NewString(), want: http.StatusNoContent},
		{name: "bad id", id: "1", want: http.StatusBadRequest},
		{name: "not found", id: uuid.NewString(), err: availability.ErrWindowNotFound, want: http.StatusNotFound},
		{name: "store down", id: uuid.NewString(), err: availability.ErrStoreUnavailable, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/availability/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"availabilityId": tt.id})
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.Discard()).Handle(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
