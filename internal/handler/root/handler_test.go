package root

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	e := echo.New()
	New().RegisterRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    info   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, welcomeMessage, body.Message)
	assert.Equal(t, APIName, body.Data.APIName)
	assert.Equal(t, Version, body.Data.Version)
	assert.Contains(t, body.Data.Endpoints, "GET /products/vendor/{vendor_id}")
	assert.Contains(t, body.Data.QueryParameters["/products"], "limit")
}
