package typesys

// Row is one arm of a polymorphic function type table: the argument
// patterns followed by the result type, e.g. [array(a), fn(a)->b, array(b)]
// for map's array-argument mapping.
type Row struct {
	Patterns []Type
	Result   Type
}

// NewPolyFn turns a table of
// [arg1Pattern, ..., argNPattern, result] rows into a Function type with
// one mapping per row. Every *Variable occurring in a row's patterns (or
// bound by a *FuncPattern) is collected automatically as that mapping's
// Bindings, so callers never have to list them by hand.
func NewPolyFn(rows ...Row) *Function {
	if len(rows) == 0 {
		return &Function{Arity: 0, Mappings: nil}
	}
	arity := len(rows[0].Patterns)
	mappings := make([]Mapping, len(rows))
	for i, row := range rows {
		mappings[i] = Mapping{
			Bindings: collectVariables(row.Patterns),
			Patterns: row.Patterns,
			Result:   row.Result,
		}
	}
	return &Function{Arity: arity, Mappings: mappings}
}

func collectVariables(patterns []Type) []*Variable {
	seen := map[*Variable]bool{}
	var out []*Variable
	var walk func(Type)
	walk = func(t Type) {
		switch tt := t.(type) {
		case *Variable:
			if !seen[tt] {
				seen[tt] = true
				out = append(out, tt)
			}
		case *Applied:
			walk(tt.Receiver)
			for _, a := range tt.Args {
				walk(a)
			}
		case *FuncPattern:
			if tt.Bind != nil && !seen[tt.Bind] {
				seen[tt.Bind] = true
				out = append(out, tt.Bind)
			}
		case *Union:
			for _, m := range tt.members {
				walk(m)
			}
		}
	}
	for _, p := range patterns {
		walk(p)
	}
	return out
}
