// Package util contains reflection helpers shared by the tool package for
// deriving parameter declarations from Go structs.
package util

import (
	"reflect"
	"strings"
)

// JSONType maps a Go type onto the JSON schema type name used in parameter
// declarations.
func JSONType(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// FieldName returns the effective parameter name for a struct field,
// honoring the json tag when present.
func FieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return field.Name
	}
	return name
}

// IsOptionalField reports whether a struct field maps onto an optional
// parameter: pointer fields and omitempty-tagged fields are optional.
func IsOptionalField(field reflect.StructField) bool {
	if field.Type.Kind() == reflect.Ptr {
		return true
	}
	for _, opt := range strings.Split(field.Tag.Get("json"), ",")[1:] {
		if opt == "omitempty" {
			return true
		}
	}
	return false
}
