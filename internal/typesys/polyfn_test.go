package typesys

import "testing"

func TestNewPolyFnArity(t *testing.T) {
	fn := NewPolyFn(
		Row{Patterns: []Type{NumberT, NumberT}, Result: NumberT},
		Row{Patterns: []Type{StringT, StringT}, Result: StringT},
	)
	if fn.Arity != 2 {
		t.Errorf("Arity = %d, want 2", fn.Arity)
	}
	if len(fn.Mappings) != 2 {
		t.Errorf("len(Mappings) = %d, want 2", len(fn.Mappings))
	}
}

func TestNewPolyFnCollectsVariables(t *testing.T) {
	a := NewVariable("a")
	fn := NewPolyFn(Row{Patterns: []Type{Array(a)}, Result: a})
	if len(fn.Mappings[0].Bindings) != 1 || fn.Mappings[0].Bindings[0] != a {
		t.Errorf("Bindings = %v, want [a]", fn.Mappings[0].Bindings)
	}
}

func TestNewPolyFnCollectsFuncPatternBinding(t *testing.T) {
	bound := NewVariable("f")
	fn := NewPolyFn(Row{Patterns: []Type{&FuncPattern{Arity: 1, Bind: bound}}, Result: bound})
	if len(fn.Mappings[0].Bindings) != 1 || fn.Mappings[0].Bindings[0] != bound {
		t.Errorf("Bindings = %v, want [f]", fn.Mappings[0].Bindings)
	}
}

func TestNewPolyFnEmpty(t *testing.T) {
	fn := NewPolyFn()
	if fn.Arity != 0 || fn.Mappings != nil {
		t.Errorf("NewPolyFn() = %+v, want zero-value function", fn)
	}
}

func TestNewPolyFnAppliesCorrectMapping(t *testing.T) {
	a := NewVariable("a")
	fn := NewPolyFn(
		Row{Patterns: []Type{Array(a)}, Result: a},
	)
	got := Apply(fn, []Type{Array(StringT)})
	if got != StringT {
		t.Errorf("Apply(mapOf-style polyfn, array(string)) = %v, want string", got)
	}
}
