package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	ierr "seller-dashboard-api/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Product is the only shape a product document leaves the repository in.
type Product struct {
	Id          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name" validate:"required"`
	Price       float64   `json:"price" firestore:"price" validate:"gte=0"`
	Description string    `json:"description" firestore:"description"`
	ImageUrl    string    `json:"imageUrl" firestore:"imageUrl" validate:"omitempty,url"`
	VendorId    string    `json:"vendorId" firestore:"vendorId" validate:"required"`
	Email       string    `json:"email" firestore:"email" validate:"omitempty,email"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// ProductFromDoc coerces raw document data into a Product. Documents missing a
// required field, or holding a value of the wrong type, are reported as
// errors.Malformed.
func ProductFromDoc(id string, data map[string]interface{}) (Product, error) {
	var err error
	p := Product{Id: id}

	if p.Name, err = stringField(data, "name"); err != nil {
		return Product{}, err
	}
	if p.Description, err = stringField(data, "description"); err != nil {
		return Product{}, err
	}
	if p.ImageUrl, err = stringField(data, "imageUrl"); err != nil {
		return Product{}, err
	}
	if p.VendorId, err = stringField(data, "vendorId"); err != nil {
		return Product{}, err
	}
	if p.Email, err = stringField(data, "email"); err != nil {
		return Product{}, err
	}
	if p.Price, err = priceField(data, "price"); err != nil {
		return Product{}, err
	}
	if p.CreatedAt, err = timeField(data, "createdAt"); err != nil {
		return Product{}, err
	}

	if err := validate.Struct(p); err != nil {
		return Product{}, fmt.Errorf("%w: %s", ierr.Malformed, describe(err))
	}

	return p, nil
}

func stringField(data map[string]interface{}, key string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ierr.Malformed, key, v)
	}
	return strings.TrimSpace(s), nil
}

func priceField(data map[string]interface{}, key string) (float64, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s is missing", ierr.Malformed, key)
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not a number", ierr.Malformed, key)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s is not a number", ierr.Malformed, key)
		}
		return f, nil
	}

	return 0, fmt.Errorf("%w: %s is %T, want number", ierr.Malformed, key, v)
}

func timeField(data map[string]interface{}, key string) (time.Time, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return time.Time{}, fmt.Errorf("%w: %s is missing", ierr.Malformed, key)
	}

	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case *time.Time:
		if t != nil {
			return t.UTC(), nil
		}
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s is not an RFC3339 timestamp", ierr.Malformed, key)
		}
		return parsed.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %s is %T, want timestamp", ierr.Malformed, key, v)
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(fields, ", ")
}
