package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocumentIsValid(t *testing.T) {
	doc := New("Seller Dashboard API", "1.0.0", "test")
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{"/", "/health", "/products", "/products/{id}", "/products/vendor/{vendor_id}"} {
		item := doc.Paths.Find(path)
		require.NotNil(t, item, path)
		assert.NotNil(t, item.Get, path)
	}

	list := doc.Paths.Find("/products").Get
	assert.NotNil(t, list.Parameters.GetByInAndName(openapi3.ParameterInQuery, "limit"))
	assert.NotNil(t, list.Responses.Status(http.StatusBadRequest))
	assert.NotNil(t, doc.Paths.Find("/products/{id}").Get.Responses.Status(http.StatusNotFound))

	degraded := doc.Paths.Find("/health").Get.Responses.Status(http.StatusServiceUnavailable)
	require.NotNil(t, degraded)
	assert.Contains(t, *degraded.Value.Description, "db_reachable=false")
}

func TestHandlerServesJSONAndYAML(t *testing.T) {
	h, err := NewHandler(New("Seller Dashboard API", "1.0.0", "test"))
	require.NoError(t, err)

	e := echo.New()
	h.RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	loaded, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Seller Dashboard API", loaded.Info.Title)
	assert.NoError(t, loaded.Validate(context.Background()))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get(echo.HeaderContentType))

	var out map[string]interface{}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "3.0.3", out["openapi"])
}
