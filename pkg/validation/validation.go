// Package validation wraps go-playground/validator so request payloads are
// checked the same way by the HTTP layer and by domain services.
package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one offending field. Loc is the path to the field
// starting at "body", with list indexes as integers.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "-" {
			return ""
		}
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Struct validates dest against its `validate` tags. It returns nil or a
// CodeValidation error whose details are a []FieldError.
func Struct(dest any) error {
	if err := validate.Struct(dest); err != nil {
		return FormatErrors(err)
	}
	return nil
}

// FormatErrors converts validator output into a typed validation error.
func FormatErrors(err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed").
			WithDetails([]FieldError{{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"}})
	}
	details := make([]FieldError, 0, len(errs))
	for _, fieldErr := range errs {
		details = append(details, FieldError{
			Loc:  Location(fieldErr.Namespace()),
			Msg:  Message(fieldErr),
			Type: errorType(fieldErr),
		})
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
}

// Invalid builds a single-field validation error.
func Invalid(msg, typ string, loc ...any) *pkgerrors.Error {
	path := append([]any{"body"}, loc...)
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
		WithDetails([]FieldError{{Loc: path, Msg: msg, Type: typ}})
}

// Location turns a validator namespace such as "QuoteRequest.items[0].qty"
// into ["body", "items", 0, "qty"].
func Location(namespace string) []any {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	loc := []any{"body"}
	for _, part := range parts {
		name := part
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 {
				if name != "" {
					loc = append(loc, name)
				}
				break
			}
			if open > 0 {
				loc = append(loc, name[:open])
			}
			closing := strings.IndexByte(name[open:], ']')
			if closing < 0 {
				loc = append(loc, name[open:])
				break
			}
			raw := name[open+1 : open+closing]
			if idx, err := strconv.Atoi(raw); err == nil {
				loc = append(loc, idx)
			} else {
				loc = append(loc, raw)
			}
			name = name[open+closing+1:]
		}
	}
	return loc
}

func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("ensure this value has more than %s items", fe.Param())
		}
		return fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("ensure this value has at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	}
	return "is invalid"
}

func errorType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value_error.missing"
	case "gt":
		return "value_error.number.not_gt"
	case "gte":
		return "value_error.number.not_ge"
	case "lte":
		return "value_error.number.not_le"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "value_error.list.min_items"
		}
	}
	return "value_error." + fe.Tag()
}
