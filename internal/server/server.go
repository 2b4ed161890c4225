package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"seller-dashboard-api/internal/config"
	"seller-dashboard-api/internal/response"
	"seller-dashboard-api/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// RouteRegistrar is implemented by every handler package.
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

type Server struct {
	echo *echo.Echo
	addr string
}

func New(cnf config.Server, handlers ...RouteRegistrar) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cnf.Debug
	e.Validator = validator.New()
	e.HTTPErrorHandler = response.ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error().Err(err).Bytes("stack", stack).Msg("recovered from panic")
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cnf.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	if cnf.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: cnf.RequestTimeout,
		}))
	}

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return &Server{
		echo: e,
		addr: net.JoinHostPort("", cnf.Port),
	}
}

// ServeHTTP exposes the router, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	log.Info().Str("addr", s.addr).Msg("http server listening")
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("http server shutting down")
	return s.echo.Shutdown(ctx)
}
