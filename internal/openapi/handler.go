package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

// Handler serves a pre-rendered document; the document never changes after startup.
type Handler struct {
	json []byte
	yaml []byte
}

func NewHandler(doc *openapi3.T) (*Handler, error) {
	jsonDoc, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal openapi json: %w", err)
	}

	yamlDoc, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi yaml: %w", err)
	}

	return &Handler{json: jsonDoc, yaml: yamlDoc}, nil
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.json", h.serveJSON)
	e.GET("/openapi.yaml", h.serveYAML)
}

func (h *Handler) serveJSON(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, h.json)
}

func (h *Handler) serveYAML(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", h.yaml)
}
