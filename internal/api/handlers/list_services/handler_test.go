package list_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type fakeCatalog struct {
	services []domain.Service
}

func (f *fakeCatalog) List(category *domain.ServiceCategory) []domain.Service {
	var result []domain.Service
	for _, s := range f.services {
		if category == nil || s.Category == *category {
			result = append(result, s)
		}
	}
	return result
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{services: []domain.Service{
		{ID: "classic-cut", Name: "Classic Haircut", NameDa: "Klassisk klipning", Price: 300, Category: domain.CategoryMen, Tags: []string{"popular"}, TagsDa: []string{"populær"}},
		{ID: "color", Name: "Hair Colour", Price: 650, Category: domain.CategoryWomen, Featured: true},
	}}
}

func doRequest(query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(newCatalog(), logger.Discard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services"+query, nil))
	return rec
}

func TestHandle_Localized(t *testing.T) {
	rec := doRequest("")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ServiceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Klassisk klipning", resp.Services[0].Name)
	assert.Equal(t, []string{"populær"}, resp.Services[0].Tags)
	assert.Equal(t, "Hair Colour", resp.Services[1].Name, "falls back to english name")
	assert.Equal(t, []string{}, resp.Services[1].Tags)

	rec = doRequest("?lang=en&category=men")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Classic Haircut", resp.Services[0].Name)
}

func TestHandle_InvalidCategory(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, doRequest("?category=kids").Code)
}
