package util

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type schemaSample struct {
	Name    string   `json:"name"`
	Count   int      `json:"count,omitempty"`
	Ratio   *float64 `json:"ratio"`
	Tags    []string `json:"tags"`
	NoTag   bool
	Renamed string `json:",omitempty"`
}

func field(t *testing.T, name string) reflect.StructField {
	t.Helper()
	f, ok := reflect.TypeOf(schemaSample{}).FieldByName(name)
	if !ok {
		t.Fatalf("no field %s", name)
	}
	return f
}

func TestJSONType(t *testing.T) {
	assert.Equal(t, "string", JSONType(field(t, "Name").Type))
	assert.Equal(t, "integer", JSONType(field(t, "Count").Type))
	assert.Equal(t, "number", JSONType(field(t, "Ratio").Type))
	assert.Equal(t, "array", JSONType(field(t, "Tags").Type))
	assert.Equal(t, "boolean", JSONType(field(t, "NoTag").Type))
	assert.Equal(t, "object", JSONType(reflect.TypeOf(map[string]any{})))
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "name", FieldName(field(t, "Name")))
	assert.Equal(t, "count", FieldName(field(t, "Count")))
	assert.Equal(t, "NoTag", FieldName(field(t, "NoTag")))
	// A bare omitempty tag keeps the Go field name.
	assert.Equal(t, "Renamed", FieldName(field(t, "Renamed")))
}

func TestIsOptionalField(t *testing.T) {
	assert.False(t, IsOptionalField(field(t, "Name")))
	assert.True(t, IsOptionalField(field(t, "Count")))
	assert.True(t, IsOptionalField(field(t, "Ratio")))
	assert.False(t, IsOptionalField(field(t, "NoTag")))
	assert.True(t, IsOptionalField(field(t, "Renamed")))
}
