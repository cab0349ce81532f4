// Package validation wraps go-playground/validator to enforce the request
// constraints declared in struct tags (required fields, minimum lengths,
// email formats) and to turn validator output into field-level errors the
// client can understand.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the shared validator instance. Field names in error
// output come from json tags, so they match what the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes a single validation failure on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the error type returned by Validate for structural failures.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks v against its struct tags. It returns nil on success,
// FieldErrors when one or more fields violate their constraints, and the
// underlying error unchanged for non-validation failures (e.g. passing a
// non-struct value).
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
	}
	return out
}

// fieldPath returns the json path of the failing field relative to the root
// struct, e.g. "emails_to_invite[1]" for a dive failure inside a slice.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// messageFor translates a validator tag into a human-readable message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
