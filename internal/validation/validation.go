// Package validation validates request payloads before any store access.
// Rules live in `validate` struct tags; each field may carry a `msg` tag
// with the client-facing message reported for any rule violation on that
// field.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"devconnect/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s and returns a validation AppError carrying one message
// per failed field, or nil when s is valid.
func Struct(s interface{}) *models.AppError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return models.NewValidationError("Invalid request body")
	}

	t := baseStructType(s)
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, messageFor(t, fe))
	}
	return models.NewValidationError(msgs...)
}

// messageFor resolves the message for a failed field: the field's `msg` tag
// when present, otherwise a generated "<json name> failed <rule>" fallback.
func messageFor(t reflect.Type, fe validator.FieldError) string {
	if t != nil {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get("msg"); msg != "" {
				return msg
			}
			name := jsonName(sf)
			return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
		}
	}
	return fmt.Sprintf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag())
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return strings.ToLower(sf.Name)
	}
	name := strings.Split(tag, ",")[0]
	if name == "" || name == "-" {
		return strings.ToLower(sf.Name)
	}
	return name
}

func baseStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t != nil && t.Kind() == reflect.Struct {
		return t
	}
	return nil
}
