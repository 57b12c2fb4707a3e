package validation

import (
	"fmt"
	"reflect"
	"strings"

	"soyco-intake/internal/form"

	"github.com/go-playground/validator/v10"
)

// FieldError is one per-field validation failure, addressed by the json
// path of the offending field (e.g. "clientInfo.phoneNumber").
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return &Validator{v: v}
}

// Validate computes the per-field errors for a record. A draft with
// errors stays editable; the errors only block submit and PDF actions.
func (val *Validator) Validate(rec *form.OrderRecord) []FieldError {
	err := val.v.Struct(rec)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "record", Message: "is invalid"}}
	}

	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: validationMessage(fe),
		})
	}
	return out
}

// CanSubmit gates submit and PDF generation: every field valid, at least
// one complete line item, and a captured digital signature.
func (val *Validator) CanSubmit(rec *form.OrderRecord) []FieldError {
	clean := rec.Normalize()

	out := val.Validate(clean)
	if len(clean.OrderDetails) == 0 {
		out = append(out, FieldError{
			Field:   "orderDetails",
			Message: "must contain at least one line item",
		})
	}
	if clean.Compliance.DigitalSignature == "" {
		out = append(out, FieldError{
			Field:   "compliance.digitalSignature",
			Message: "is required",
		})
	}
	return out
}

// fieldPath turns the validator namespace "OrderRecord.clientInfo.email"
// into "clientInfo.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "e164":
		return "must be an international phone number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}
