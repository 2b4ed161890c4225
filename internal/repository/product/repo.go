package product

import (
	"context"
	"fmt"

	"seller-dashboard-api/internal/database"
	ierr "seller-dashboard-api/internal/errors"
	"seller-dashboard-api/internal/model"

	"github.com/rs/zerolog/log"
)

type ProductRepository struct {
	db database.Client
}

var _ IRepository = ProductRepository{}

func New(db database.Client) ProductRepository {
	return ProductRepository{
		db: db,
	}
}

func (r ProductRepository) GetById(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("get product: %w: empty id", ierr.Invalid)
	}

	doc, err := r.db.GetDoc(ctx, productNode, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w, id: %s", err, id)
	}

	product, err := model.ProductFromDoc(doc.ID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("get product: %w, id: %s", err, id)
	}

	return &product, nil
}

// List returns at most q.Limit products. A query matching nothing yields an
// empty, non-nil slice.
func (r ProductRepository) List(ctx context.Context, q ListQuery) ([]model.Product, error) {
	query, err := q.toQuery()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	docs, err := r.db.Query(ctx, query)
	if err != nil {
		if ierr.Kind(err) == nil && q.VendorId != "" && q.SortBy != "" {
			log.Warn().Err(err).Msgf("vendor listing sorted by %s may need a composite index on (%s, %s)",
				q.SortBy, VendorIdFieldPath, sortable[q.SortBy])
		}
		return nil, fmt.Errorf("list products: %w, %s", err, q)
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := model.ProductFromDoc(doc.ID, doc.Data)
		if err != nil {
			return nil, fmt.Errorf("list products: %w, id: %s", err, doc.ID)
		}
		products = append(products, product)
	}

	return products, nil
}
