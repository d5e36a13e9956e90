package tool

import (
	"context"
	"reflect"

	"github.com/hupe1980/agentroute/internal/util"
)

// FunctionTool is a generic adapter that exposes a plain Go function as an
// agentroute tool.
//
// It holds the ordered parameter declaration alongside the function so a
// capability can be registered without defining a new type. A FunctionTool
// has no internal mutable state after construction and is safe for
// concurrent use by multiple goroutines.
type FunctionTool struct {
	// Tool identifier (unique within a registry, case-insensitive)
	name string
	// Human-readable description shown to models
	description string
	// Ordered argument declarations
	parameters []Parameter
	// User supplied implementation
	fn func(ctx context.Context, args map[string]any) (string, error)
}

// NewFunctionTool constructs a FunctionTool from an explicit parameter
// declaration and function.
//
// Example:
//
//	echo := NewFunctionTool(
//	  "EchoTool",
//	  "Repeat the given text back verbatim",
//	  []Parameter{{Name: "text", Type: "string", Required: true}},
//	  func(_ context.Context, args map[string]any) (string, error) {
//	    return args["text"].(string), nil
//	  },
//	)
func NewFunctionTool(
	name, description string,
	parameters []Parameter,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

// NewFunctionToolFromStruct derives the parameter declaration from a struct
// using reflection. Exported fields become parameters in declaration order;
// a field is optional when it is a pointer or carries an omitempty json tag,
// and may document itself with a `description` tag.
//
// Example:
//
//	type LookupArgs struct {
//	  City  string `json:"city" description:"City to look up"`
//	  Limit *int   `json:"limit,omitempty" description:"Max results"`
//	}
//
//	lookup := NewFunctionToolFromStruct("CityLookup", "Look up a city", LookupArgs{}, fn)
func NewFunctionToolFromStruct(
	name, description string,
	structType any,
	fn func(ctx context.Context, args map[string]any) (string, error),
) *FunctionTool {
	t := reflect.TypeOf(structType)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var params []Parameter
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Tag.Get("json") == "-" {
				continue
			}
			params = append(params, Parameter{
				Name:        util.FieldName(field),
				Type:        util.JSONType(field.Type),
				Description: field.Tag.Get("description"),
				Required:    !util.IsOptionalField(field),
			})
		}
	}

	return NewFunctionTool(name, description, params, fn)
}

// Name returns the unique tool name used as the registry key.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the short natural language description exposed to models.
func (t *FunctionTool) Description() string { return t.description }

// Parameters returns the ordered argument declarations.
func (t *FunctionTool) Parameters() []Parameter {
	cp := make([]Parameter, len(t.parameters))
	copy(cp, t.parameters)
	return cp
}

// Call invokes the wrapped function. Argument validation happens upstream in
// the Executor; implementations receiving a FunctionTool directly must pass
// arguments that satisfy the declared parameters themselves.
func (t *FunctionTool) Call(ctx context.Context, args map[string]any) (string, error) {
	return t.fn(ctx, args)
}
