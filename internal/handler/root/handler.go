package root

import (
	"seller-dashboard-api/internal/response"

	"github.com/labstack/echo/v4"
)

type info struct {
	APIName         string                       `json:"api_name"`
	Version         string                       `json:"version"`
	Description     string                       `json:"description"`
	Endpoints       map[string]string            `json:"endpoints"`
	QueryParameters map[string]map[string]string `json:"query_parameters"`
}

var listParameters = map[string]string{
	"limit":   "Limit number of results, 1-1000 (default: 100)",
	"sort_by": "Sort by field (name, price, createdAt); store order when omitted",
	"order":   "Sort order (asc, desc) (default: asc)",
}

type Handler struct {
	info info
}

func New() *Handler {
	return &Handler{
		info: info{
			APIName:     APIName,
			Version:     Version,
			Description: Description,
			Endpoints: map[string]string{
				"GET /":                            "API information",
				"GET /health":                      "Health check",
				"GET /products":                    "Get all products",
				"GET /products/{product_id}":       "Get product by ID",
				"GET /products/vendor/{vendor_id}": "Get products by vendor",
				"GET /openapi.json":                "OpenAPI document (JSON)",
				"GET /openapi.yaml":                "OpenAPI document (YAML)",
			},
			QueryParameters: map[string]map[string]string{
				"/products":                    listParameters,
				"/products/vendor/{vendor_id}": listParameters,
			},
		},
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
}

func (h *Handler) root(c echo.Context) error {
	return response.OK(c, h.info, welcomeMessage)
}
