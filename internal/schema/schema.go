// Package schema derives JSON-schema-style descriptions of the model types
// for the /schema viewer endpoint.
package schema

import (
	"reflect"
	"strings"
)

// Schema is a JSON-schema-like description of a model type
type Schema map[string]interface{}

// Of builds a schema for the given value's type. Only struct, slice and
// scalar types appear in the models, so nothing else is supported.
func Of(v interface{}) Schema {
	return describe(reflect.TypeOf(v))
}

func describe(t reflect.Type) Schema {
	switch t.Kind() {
	case reflect.Pointer:
		return describe(t.Elem())
	case reflect.Struct:
		return describeStruct(t)
	case reflect.Slice, reflect.Array:
		return Schema{
			"type":  "array",
			"items": describe(t.Elem()),
		}
	case reflect.String:
		return Schema{"type": "string"}
	case reflect.Bool:
		return Schema{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Schema{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return Schema{"type": "number"}
	default:
		return Schema{"type": "object"}
	}
}

func describeStruct(t reflect.Type) Schema {
	properties := map[string]interface{}{}
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Anonymous embedded structs contribute their fields inline
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded := describeStruct(field.Type)
			if props, ok := embedded["properties"].(map[string]interface{}); ok {
				for k, v := range props {
					properties[k] = v
				}
			}
			if req, ok := embedded["required"].([]string); ok {
				required = append(required, req...)
			}
			continue
		}

		name, optional, skip := jsonName(field)
		if skip {
			continue
		}

		properties[name] = describe(field.Type)
		if !optional {
			required = append(required, name)
		}
	}

	s := Schema{
		"title":      t.Name(),
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// jsonName resolves a field's wire name from its json tag
func jsonName(field reflect.StructField) (name string, optional, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}
	return name, optional, false
}
