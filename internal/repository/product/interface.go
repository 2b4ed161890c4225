package product

import (
	"context"

	"seller-dashboard-api/internal/model"
)

type IRepository interface {
	GetById(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, q ListQuery) ([]model.Product, error)
}
