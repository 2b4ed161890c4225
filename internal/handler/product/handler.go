package product

import (
	"errors"
	"fmt"

	ierr "seller-dashboard-api/internal/errors"
	productRepository "seller-dashboard-api/internal/repository/product"
	"seller-dashboard-api/internal/response"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	productRepo productRepository.IRepository
}

func New(productRepo productRepository.IRepository) *Handler {
	return &Handler{
		productRepo: productRepo,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.get)
	e.GET("/products/vendor/:vendor_id", h.listByVendor)
}

func (h *Handler) list(c echo.Context) error {
	q, err := bindListParams(c)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := h.productRepo.List(c.Request().Context(), q)
	if err != nil {
		return response.Error(c, err)
	}

	log.Debug().Msgf("retrieved %d products, %s", len(products), q)
	return response.OK(c, products, fmt.Sprintf(listMessage, len(products)))
}

func (h *Handler) get(c echo.Context) error {
	id := c.Param("id")

	product, err := h.productRepo.GetById(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ierr.NotFound) {
			err = ierr.WithMessage(err, fmt.Sprintf(notFoundMessage, id))
		}
		return response.Error(c, err)
	}

	log.Debug().Msgf("retrieved product %s", id)
	return response.OK(c, product, fmt.Sprintf(getMessage, id))
}

func (h *Handler) listByVendor(c echo.Context) error {
	vendorId := c.Param("vendor_id")

	q, err := bindListParams(c)
	if err != nil {
		return response.Error(c, err)
	}
	q.VendorId = vendorId

	products, err := h.productRepo.List(c.Request().Context(), q)
	if err != nil {
		return response.Error(c, err)
	}

	log.Debug().Msgf("retrieved %d products, %s", len(products), q)
	return response.OK(c, products, fmt.Sprintf(vendorListMessage, len(products), vendorId))
}
