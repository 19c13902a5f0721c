package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Status string `json:"status"`
	}

	t.Run("ok", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"confirmed"}`))
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "confirmed", p.Status)
	})

	t.Run("empty body", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		require.ErrorIs(t, DecodeJSON(req, &p), ErrEmptyBody)
	})

	t.Run("unknown field", func(t *testing.T) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"x","extra":1}`))
		require.Error(t, DecodeJSON(req, &p))
	})
}

func TestRespondFieldError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondFieldError(rec, "customerEmail", "invalid email address")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Error: "invalid email address", Field: "customerEmail"}, body)
}

func TestRespondServiceUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondServiceUnavailable(rec, "try again")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"try again"}`, rec.Body.String())
}
