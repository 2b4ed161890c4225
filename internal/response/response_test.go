package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	ierr "seller-dashboard-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(debug bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Debug = debug
	req := httptest.NewRequest(http.MethodGet, "/products?limit=0", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("x: %w", ierr.Invalid)))
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("x: %w", ierr.NotFound)))
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(fmt.Errorf("x: %w", ierr.Unavailable)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(fmt.Errorf("x: %w", ierr.Malformed)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusCode(echo.ErrMethodNotAllowed))
}

func TestOK(t *testing.T) {
	c, rec := newContext(false)

	require.NoError(t, OK(c, []string{}, "Retrieved 0 products"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{}, body["data"])
	assert.Equal(t, "Retrieved 0 products", body["message"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "status_code")
}

func TestOKWithoutMessage(t *testing.T) {
	c, rec := newContext(false)

	require.NoError(t, OK(c, map[string]string{"status": "healthy"}, ""))
	body := decode(t, rec)
	assert.NotContains(t, body, "message")
	assert.Contains(t, body, "data")
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		errMsg string
	}{
		{
			name:   "public message wins",
			err:    ierr.WithMessage(fmt.Errorf("get product: %w, id: p1", ierr.NotFound), "Product with ID 'p1' not found"),
			code:   http.StatusNotFound,
			errMsg: "Product with ID 'p1' not found",
		},
		{
			name:   "driver detail is hidden",
			err:    fmt.Errorf("list products: %w: rpc error: code = Unavailable desc = 10.0.0.1 refused", ierr.Unavailable),
			code:   http.StatusServiceUnavailable,
			errMsg: "database unavailable",
		},
		{
			name:   "internal",
			err:    fmt.Errorf("list products: %w, id: p2", ierr.Malformed),
			code:   http.StatusInternalServerError,
			errMsg: "internal server error",
		},
		{
			name:   "echo routing error",
			err:    echo.ErrNotFound,
			code:   http.StatusNotFound,
			errMsg: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(false)
			require.NoError(t, Error(c, tt.err))

			assert.Equal(t, tt.code, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.errMsg, body["error"])
			assert.Equal(t, float64(tt.code), body["status_code"])
			assert.NotContains(t, body, "data")
		})
	}
}

func TestErrorDebug(t *testing.T) {
	c, rec := newContext(true)
	err := fmt.Errorf("list products: %w, id: p2", ierr.Malformed)

	require.NoError(t, Error(c, err))
	assert.Equal(t, err.Error(), decode(t, rec)["error"])
}

func TestErrorHandler(t *testing.T) {
	c, rec := newContext(false)
	ErrorHandler(errors.New("panic: nil map"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode(t, rec)["error"])

	// a committed response is left untouched
	ErrorHandler(echo.ErrNotFound, c)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestErrorHandlerHead(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/products/missing", nil), rec)

	ErrorHandler(fmt.Errorf("x: %w", ierr.NotFound), c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
