package validator

import (
	"testing"

	ierr "seller-dashboard-api/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Limit  int    `query:"limit" validate:"min=1,max=1000"`
	SortBy string `query:"sort_by" validate:"omitempty,oneof=name price createdAt"`
	Vendor string `param:"vendor_id" validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&params{Limit: 1, Vendor: "v1"}))
	assert.NoError(t, v.Validate(&params{Limit: 1000, SortBy: "createdAt", Vendor: "v1"}))
}

func TestValidateMessages(t *testing.T) {
	v := New()

	tests := []struct {
		in   params
		want string
	}{
		{params{Limit: 0, Vendor: "v"}, "limit must be at least 1"},
		{params{Limit: 1001, Vendor: "v"}, "limit must be at most 1000"},
		{params{Limit: 1, SortBy: "email", Vendor: "v"}, "sort_by must be one of [name, price, createdAt]"},
		{params{Limit: 1}, "vendor_id is required"},
	}

	for _, tt := range tests {
		err := v.Validate(&tt.in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ierr.Invalid)

		msg, ok := ierr.Message(err)
		assert.True(t, ok)
		assert.Equal(t, tt.want, msg)
	}
}

func TestValidateJoinsFields(t *testing.T) {
	err := New().Validate(&params{Limit: 0, SortBy: "x", Vendor: "v"})
	msg, _ := ierr.Message(err)
	assert.Equal(t, "limit must be at least 1; sort_by must be one of [name, price, createdAt]", msg)
}
