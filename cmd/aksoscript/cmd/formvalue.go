package cmd

import (
	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/internal/value"
)

// configValue converts one decoded YAML scalar/array into an evaluator
// value.Value. Go's YAML decoder hands back the same any-typed tree an
// encoding/json.Unmarshal into interface{} would (map[string]any is never
// produced here since form values are flat), so the conversion mirrors a
// JSON-literal decode.
func configValue(v any) value.Value {
	switch vv := v.(type) {
	case nil:
		return value.NullValue
	case bool:
		return value.Bool(vv)
	case int:
		return value.Number(float64(vv))
	case int64:
		return value.Number(float64(vv))
	case float64:
		return value.Number(vv)
	case string:
		return value.Str(vv)
	case []any:
		out := make(value.Array, len(vv))
		for i, e := range vv {
			out[i] = configValue(e)
		}
		return out
	default:
		return value.NullValue
	}
}

// configValueType infers the static type a configValue conversion of v
// would produce, for feeding the analyzer's form-value type table from the
// same config entries eval uses at runtime.
func configValueType(v any) typesys.Type {
	switch vv := v.(type) {
	case nil:
		return typesys.NullT
	case bool:
		return typesys.BoolT
	case int, int64, float64:
		return typesys.NumberT
	case string:
		return typesys.StringT
	case []any:
		if len(vv) == 0 {
			return typesys.Array(typesys.NewVariable("form"))
		}
		members := make([]typesys.Type, len(vv))
		for i, e := range vv {
			members[i] = configValueType(e)
		}
		return typesys.Array(typesys.NewUnion(members))
	default:
		return typesys.NullT
	}
}

// formValueGetter adapts a flat name->value map into the evaluator's
// getFormValue callback.
func formValueGetter(values map[string]any) func(string) value.Value {
	return func(name string) value.Value {
		v, ok := values[name]
		if !ok {
			return value.NullValue
		}
		return configValue(v)
	}
}

// formValueTyper adapts the same map into the analyzer's FormValueTypes
// callback.
func formValueTyper(values map[string]any) func(string) (typesys.Type, bool) {
	return func(name string) (typesys.Type, bool) {
		v, ok := values[name]
		if !ok {
			return nil, false
		}
		return configValueType(v), true
	}
}
