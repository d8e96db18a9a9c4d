package validation

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"ordersdesk.com/app/internal/modules/orders"
)

type FieldErrors map[string]string

// RegisterOrderRules adds the facet value rules used by list query binding.
func RegisterOrderRules(v *validator.Validate) error {
	rules := map[string][]string{
		"order_status":       orders.Statuses,
		"fulfillment_status": orders.FulfillmentStatuses,
		"payment_status":     orders.PaymentStatuses,
	}
	for tag, allowed := range rules {
		allowed := allowed
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(allowed, fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// FromBindError maps a bind/validation error to field -> message, keyed by
// the form tag of dst.
func FromBindError(err error, dst any) FieldErrors {
	out := FieldErrors{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fieldKey(dst, fe.StructField())] = messageForTag(fe.Tag(), fe.Param())
		}
		return out
	}

	out["_"] = "Invalid request parameters."
	return out
}

func fieldKey(dst any, structField string) string {
	t := reflect.TypeOf(dst)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}

	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	tag, _, _ := strings.Cut(f.Tag.Get("form"), ",")
	if tag == "" || tag == "-" {
		return strings.ToLower(structField)
	}
	return tag
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "min":
		return "Must be at least " + param + "."
	case "max":
		return "Must be at most " + param + "."
	case "order_status", "fulfillment_status", "payment_status":
		return "Unknown " + strings.ReplaceAll(tag, "_", " ") + "."
	default:
		return "Invalid value."
	}
}
