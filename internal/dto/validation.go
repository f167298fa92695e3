package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the decimal type mapping and the register rules
// on a validator engine. Decimal fields validate as float64, so the stock
// numeric tags (gte, gt, lte) apply to them.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v.RegisterValidation("strength", validateStrength)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// validateStrength accepts a v/v percentage in [0, 100].
func validateStrength(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return f >= 0 && f <= 100
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := field.Int()
		return i >= 0 && i <= 100
	}
	return false
}

// jsonFieldName reports fields by their JSON name so error lists match the request body.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		if form := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]; form != "" {
			return form
		}
		return f.Name
	}
	return name
}

// FieldErrors converts binding failures into itemized field errors. It
// returns nil when err is not a validator error (e.g. malformed JSON).
func FieldErrors(err error) []FieldErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldErrorResponse, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldErrorResponse{Field: fe.Field(), Message: ruleMessage(fe)})
	}
	return out
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "strength":
		return "must be a percentage between 0 and 100"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
