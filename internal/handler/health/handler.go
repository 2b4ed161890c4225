package health

import (
	"context"
	"fmt"
	"time"

	ierr "seller-dashboard-api/internal/errors"
	"seller-dashboard-api/internal/response"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	statusHealthy    = "healthy"
	degradedMessage  = "service degraded: database unreachable (status=degraded, db_reachable=false)"
	defaultTimeout   = time.Second * 2
	serviceAPI       = "api"
	serviceFirestore = "firestore"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type status struct {
	Status      string            `json:"status"`
	DbReachable bool              `json:"db_reachable"`
	Timestamp   time.Time         `json:"timestamp"`
	Services    map[string]string `json:"services"`
}

type Handler struct {
	db      Pinger
	timeout time.Duration
}

func New(db Pinger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handler{
		db:      db,
		timeout: timeout,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.health)
}

func (h *Handler) health(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		return response.Error(c, ierr.WithMessage(fmt.Errorf("health: %w", err), degradedMessage))
	}

	return response.OK(c, status{
		Status:      statusHealthy,
		DbReachable: true,
		Timestamp:   time.Now().UTC(),
		Services: map[string]string{
			serviceAPI:       "running",
			serviceFirestore: "connected",
		},
	}, "")
}

// ping bounds the check by h.timeout even when the client ignores its context.
func (h *Handler) ping(ctx context.Context) error {
	if h.db == nil {
		return fmt.Errorf("%w: no database client", ierr.Unavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- h.db.Ping(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Dur("timeout", h.timeout).Msg("health: database ping timed out")
		return fmt.Errorf("%w: %v", ierr.Unavailable, ctx.Err())
	case err := <-done:
		if err != nil && ierr.Kind(err) != ierr.Unavailable {
			return fmt.Errorf("%w: %v", ierr.Unavailable, err)
		}
		return err
	}
}
