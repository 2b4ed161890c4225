package product

import (
	"errors"
	"fmt"

	ierr "seller-dashboard-api/internal/errors"
	productRepository "seller-dashboard-api/internal/repository/product"

	"github.com/labstack/echo/v4"
)

type listParams struct {
	Limit  int    `query:"limit" validate:"min=1,max=1000"`
	SortBy string `query:"sort_by" validate:"omitempty,oneof=name price createdAt"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// bindListParams reads and validates the listing query string. Validation
// failures never reach the repository.
func bindListParams(c echo.Context) (productRepository.ListQuery, error) {
	p := listParams{
		Limit: productRepository.DefaultLimit,
		Order: productRepository.OrderAsc,
	}

	err := echo.QueryParamsBinder(c).
		Int("limit", &p.Limit).
		String("sort_by", &p.SortBy).
		String("order", &p.Order).
		BindError()
	if err != nil {
		msg := "invalid query parameters"
		var be *echo.BindingError
		if errors.As(err, &be) {
			msg = fmt.Sprintf("%s must be an integer", be.Field)
		}
		return productRepository.ListQuery{}, ierr.WithMessage(fmt.Errorf("%w: %v", ierr.Invalid, err), msg)
	}

	if err := c.Validate(&p); err != nil {
		return productRepository.ListQuery{}, err
	}

	if p.Order == "" {
		p.Order = productRepository.OrderAsc
	}

	return productRepository.ListQuery{
		Limit:  p.Limit,
		SortBy: p.SortBy,
		Order:  p.Order,
	}, nil
}
