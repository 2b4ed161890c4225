package product

import (
	"testing"

	"seller-dashboard-api/internal/database"
	ierr "seller-dashboard-api/internal/errors"
	"seller-dashboard-api/internal/repository/filter"
	"seller-dashboard-api/internal/repository/ops"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToQuery(t *testing.T) {
	tests := []struct {
		name string
		in   ListQuery
		want database.Query
	}{
		{
			name: "limit only keeps store order",
			in:   ListQuery{Limit: 100},
			want: database.Query{Collection: "products", Limit: 100},
		},
		{
			name: "sort ascending by default",
			in:   ListQuery{Limit: 2, SortBy: "price"},
			want: database.Query{
				Collection: "products",
				Limit:      2,
				OrderBy:    &database.OrderBy{Path: "price", Direction: database.Asc},
			},
		},
		{
			name: "vendor filter with descending sort",
			in:   ListQuery{Limit: 10, SortBy: "createdAt", Order: "desc", VendorId: "v1"},
			want: database.Query{
				Collection: "products",
				Limit:      10,
				Where:      []filter.Where{{Path: "vendorId", Op: ops.Equal, Value: "v1"}},
				OrderBy:    &database.OrderBy{Path: "createdAt", Direction: database.Desc},
			},
		},
		{
			name: "order without sort field is ignored",
			in:   ListQuery{Limit: 1000, Order: "desc"},
			want: database.Query{Collection: "products", Limit: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.toQuery()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToQueryRejects(t *testing.T) {
	for _, q := range []ListQuery{
		{Limit: 0},
		{Limit: 1001},
		{Limit: -5},
		{Limit: 10, SortBy: "vendorId"},
		{Limit: 10, SortBy: "price", Order: "up"},
	} {
		_, err := q.toQuery()
		assert.ErrorIs(t, err, ierr.Invalid, q.String())
	}
}
