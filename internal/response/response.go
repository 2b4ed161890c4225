package response

import (
	"errors"
	"fmt"
	"net/http"

	ierr "seller-dashboard-api/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const internalErrorMessage = "internal server error"

// Success is the envelope of every 2xx response. Data is always present, even
// when it is an empty list.
type Success struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// Failure is the envelope of every non-2xx response.
type Failure struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// OK writes data with status 200.
func OK(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Success{Success: true, Data: data, Message: message})
}

// Error logs err with the request context and writes the failure envelope.
// With echo's Debug flag on, the full error chain replaces generic messages.
func Error(c echo.Context, err error) error {
	code := StatusCode(err)
	msg := Message(err, c.Echo().Debug)

	event := log.Warn()
	if code >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Str("uri", c.Request().RequestURI).
		Strs("path_params", c.ParamValues()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("kind", ierr.KindName(err)).
		Int("status", code).
		Msg("request failed")

	return c.JSON(code, Failure{Success: false, Error: msg, StatusCode: code})
}

// StatusCode maps an error onto an HTTP status.
func StatusCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	switch ierr.Kind(err) {
	case ierr.Invalid:
		return http.StatusBadRequest
	case ierr.NotFound:
		return http.StatusNotFound
	case ierr.Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Message returns the text placed in the envelope's error field. Outside debug
// mode it is either a message attached with errors.WithMessage or a fixed text
// per status, never the wrapped driver error.
func Message(err error, debug bool) string {
	if debug {
		return err.Error()
	}

	if msg, ok := ierr.Message(err); ok {
		return msg
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return fmt.Sprint(he.Message)
	}

	switch StatusCode(err) {
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusServiceUnavailable:
		return "database unavailable"
	}
	return internalErrorMessage
}

// ErrorHandler is installed as echo's HTTPErrorHandler so that routing errors,
// recovered panics and timeouts share the envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		code := StatusCode(err)
		if e := c.NoContent(code); e != nil {
			log.Error().Err(e).Msg("failed to write error response")
		}
		return
	}

	if e := Error(c, err); e != nil {
		log.Error().Err(e).Msg("failed to write error response")
	}
}
