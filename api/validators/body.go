package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	pkgerrors "github.com/angelmondragon/quotation-service/pkg/errors"
	"github.com/angelmondragon/quotation-service/pkg/validation"
)

const (
	maxBodyBytes = 1 << 20

	invalidJSONMessage = "Invalid JSON body"
	jsonDecodeType     = "value_error.jsondecode"
)

// DecodeJSONBody decodes the request body into dest and validates it. Any
// failure is returned as a CodeValidation error with field details. The body
// must hold exactly one JSON value.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	var raw json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return validation.Invalid("field required", "value_error.missing")
		}
		return invalidJSON()
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalidJSON()
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			name := typeName(typeErr.Type)
			return validation.Invalid("value is not a valid "+name, "type_error."+name, valueLocation(raw, typeErr.Offset)...)
		}
		return invalidJSON()
	}
	return validation.Struct(dest)
}

func invalidJSON() *pkgerrors.Error {
	return validation.Invalid(invalidJSONMessage, jsonDecodeType)
}

// typeName maps a Go type to the JSON-facing name used in error details.
func typeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "str"
	case reflect.Bool:
		return "bool"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Struct, reflect.Map:
		return "dict"
	}
	return "value"
}

type jsonFrame struct {
	array     bool
	index     int
	key       string
	expectKey bool
}

// valueLocation walks raw and returns the path (object keys and array
// indexes) of the first value ending at or after offset. It is used to
// place type errors, whose offset points just past the offending value or
// just inside an opening delimiter.
func valueLocation(raw []byte, offset int64) []any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var stack []*jsonFrame
	path := func() []any {
		loc := make([]any, 0, len(stack))
		for _, f := range stack {
			if f.array {
				loc = append(loc, f.index)
			} else {
				loc = append(loc, f.key)
			}
		}
		return loc
	}
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.array {
			top.index++
		} else {
			top.expectKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		delim, isDelim := tok.(json.Delim)

		if n := len(stack); n > 0 && !stack[n-1].array && stack[n-1].expectKey {
			if isDelim && delim == '}' {
				stack = stack[:n-1]
				valueDone()
				continue
			}
			key, _ := tok.(string)
			stack[n-1].key = key
			stack[n-1].expectKey = false
			continue
		}

		if isDelim && (delim == '}' || delim == ']') {
			stack = stack[:len(stack)-1]
			valueDone()
			continue
		}

		if dec.InputOffset() >= offset {
			return path()
		}

		if isDelim {
			stack = append(stack, &jsonFrame{array: delim == '[', expectKey: delim == '{'})
			continue
		}
		valueDone()
	}
}
