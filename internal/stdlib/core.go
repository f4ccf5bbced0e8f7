package stdlib

import "github.com/cwbudde/go-aksoscript/internal/value"

const CategoryCore = "core"

func registerCore(r *Registry) {
	r.Register("if", 3, CategoryCore, "cond ? then : else, strict boolean test", func(args []value.Value) (value.Value, error) {
		if value.Truthy(args[0]) {
			return args[1], nil
		}
		return args[2], nil
	})
	r.Register("id", 1, CategoryCore, "identity", func(args []value.Value) (value.Value, error) {
		return args[0], nil
	})
}
