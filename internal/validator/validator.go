package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	ierr "seller-dashboard-api/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo.Validator. Field names in
// messages come from the query/param/json tags so they match what the client sent.
type Validator struct {
	validator *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"query", "param", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return &Validator{validator: v}
}

// Validate returns an errors.Invalid error whose public message lists every failed field.
func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ierr.Invalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	msg := strings.Join(msgs, "; ")

	return ierr.WithMessage(fmt.Errorf("%w: %s", ierr.Invalid, msg), msg)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
