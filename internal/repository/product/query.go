package product

import (
	"fmt"

	"seller-dashboard-api/internal/database"
	ierr "seller-dashboard-api/internal/errors"
	"seller-dashboard-api/internal/repository/filter"
	"seller-dashboard-api/internal/repository/ops"
)

// ListQuery holds already validated listing parameters. An empty SortBy keeps
// the store's default order, which Firestore does not guarantee to be stable.
type ListQuery struct {
	Limit    int
	SortBy   string
	Order    string
	VendorId string
}

func (q ListQuery) String() string {
	return fmt.Sprintf("limit=%d sort_by=%q order=%q vendor_id=%q", q.Limit, q.SortBy, q.Order, q.VendorId)
}

func (q ListQuery) toQuery() (database.Query, error) {
	if q.Limit < MinLimit || q.Limit > MaxLimit {
		return database.Query{}, fmt.Errorf("%w: limit %d out of range [%d, %d]", ierr.Invalid, q.Limit, MinLimit, MaxLimit)
	}

	query := database.Query{
		Collection: productNode,
		Limit:      q.Limit,
	}

	if q.VendorId != "" {
		query.Where = append(query.Where, filter.Where{Path: VendorIdFieldPath, Op: ops.Equal, Value: q.VendorId})
	}

	var direction database.Direction
	switch q.Order {
	case "", OrderAsc:
		direction = database.Asc
	case OrderDesc:
		direction = database.Desc
	default:
		return database.Query{}, fmt.Errorf("%w: order %q", ierr.Invalid, q.Order)
	}

	if q.SortBy != "" {
		path, ok := sortable[q.SortBy]
		if !ok {
			return database.Query{}, fmt.Errorf("%w: sort_by %q", ierr.Invalid, q.SortBy)
		}
		query.OrderBy = &database.OrderBy{Path: path, Direction: direction}
	}

	return query, nil
}
