package stdlib

import "github.com/cwbudde/go-aksoscript/internal/value"

const CategoryLogic = "logic"

func asBool(v value.Value) (bool, bool) {
	b, ok := v.(value.Bool)
	return bool(b), ok
}

func registerLogic(r *Registry) {
	r.Register("and", 2, CategoryLogic, "logical conjunction", func(args []value.Value) (value.Value, error) {
		a, aok := asBool(args[0])
		b, bok := asBool(args[1])
		if !aok || !bok {
			return value.Bool(false), nil
		}
		return value.Bool(a && b), nil
	})
	r.Register("or", 2, CategoryLogic, "logical disjunction", func(args []value.Value) (value.Value, error) {
		a, aok := asBool(args[0])
		b, bok := asBool(args[1])
		if !aok || !bok {
			return value.Bool(false), nil
		}
		return value.Bool(a || b), nil
	})
	r.Register("not", 1, CategoryLogic, "logical negation", func(args []value.Value) (value.Value, error) {
		a, ok := asBool(args[0])
		if !ok {
			return value.Bool(false), nil
		}
		return value.Bool(!a), nil
	})
	r.Register("xor", 2, CategoryLogic, "logical exclusive or", func(args []value.Value) (value.Value, error) {
		a, aok := asBool(args[0])
		b, bok := asBool(args[1])
		if !aok || !bok {
			return value.Bool(false), nil
		}
		return value.Bool(a != b), nil
	})
}
