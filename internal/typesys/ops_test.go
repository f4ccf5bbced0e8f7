package typesys

import "testing"

func TestSubstitute(t *testing.T) {
	v := NewVariable("a")
	arr := Array(v)
	got := Substitute(arr, v, NumberT)
	elem, ok := ArrayElem(got)
	if !ok || elem != NumberT {
		t.Errorf("Substitute did not replace array element: %v", got)
	}
}

func TestSubstituteSkipsBoundVariable(t *testing.T) {
	v := NewVariable("a")
	fn := &Function{
		Arity: 1,
		Mappings: []Mapping{
			{Bindings: []*Variable{v}, Patterns: []Type{v}, Result: v},
		},
	}
	got := Substitute(fn, v, NumberT).(*Function)
	if got.Mappings[0].Patterns[0] != v {
		t.Error("Substitute should not rewrite a mapping's own bound variable")
	}
}

func TestMatchPrimitive(t *testing.T) {
	if _, ok := Match(NumberT, NumberT); !ok {
		t.Error("identical primitives should match")
	}
	if _, ok := Match(NumberT, StringT); ok {
		t.Error("different primitives should not match")
	}
}

func TestMatchVariableBinds(t *testing.T) {
	v := NewVariable("x")
	bindings, ok := Match(v, NumberT)
	if !ok || bindings[v] != NumberT {
		t.Errorf("Match(var, number) = %v,%v want binding to number", bindings, ok)
	}
}

func TestMatchAppliedArray(t *testing.T) {
	v := NewVariable("elem")
	pattern := Array(v)
	subject := Array(StringT)
	bindings, ok := Match(pattern, subject)
	if !ok || bindings[v] != StringT {
		t.Errorf("Match(array(var), array(string)) = %v,%v", bindings, ok)
	}
}

func TestMatchUnionSubject(t *testing.T) {
	u := NewUnion([]Type{NumberT, StringT})
	if _, ok := Match(NumberT, u); !ok {
		t.Error("a pattern matching one union member should succeed")
	}
	if _, ok := Match(BoolT, u); ok {
		t.Error("a pattern matching no union member should fail")
	}
}

func TestApplyFunctionSelectsMapping(t *testing.T) {
	fn := &Function{
		Arity: 1,
		Mappings: []Mapping{
			{Patterns: []Type{NumberT}, Result: StringT},
			{Patterns: []Type{StringT}, Result: NumberT},
		},
	}
	if got := Apply(fn, []Type{NumberT}); got != StringT {
		t.Errorf("Apply(fn, number) = %v, want string", got)
	}
	if got := Apply(fn, []Type{StringT}); got != NumberT {
		t.Errorf("Apply(fn, string) = %v, want number", got)
	}
}

func TestApplyFunctionArityError(t *testing.T) {
	fn := &Function{Arity: 2, Mappings: []Mapping{{Patterns: []Type{NumberT, NumberT}, Result: NumberT}}}
	got := Apply(fn, []Type{NumberT})
	errT, ok := got.(*ErrorT)
	if !ok || errT.Reason != ErrArity {
		t.Errorf("Apply with wrong arity = %v, want ErrArity", got)
	}
}

func TestApplyFunctionUndefinedMapping(t *testing.T) {
	fn := &Function{Arity: 1, Mappings: []Mapping{{Patterns: []Type{NumberT}, Result: StringT}}}
	got := Apply(fn, []Type{BoolT})
	errT, ok := got.(*ErrorT)
	if !ok || errT.Reason != ErrUndefined {
		t.Errorf("Apply with no matching mapping = %v, want ErrUndefined", got)
	}
}

func TestApplyFunctionDefersOnTypeVariable(t *testing.T) {
	fn := &Function{Arity: 1, Mappings: []Mapping{{Patterns: []Type{NumberT}, Result: StringT}}}
	v := NewVariable("x")
	got := Apply(fn, []Type{v})
	applied, ok := got.(*Applied)
	if !ok || applied.Receiver != fn {
		t.Errorf("Apply with unresolved argument = %v, want deferred Applied", got)
	}
}

func TestApplyNonCallable(t *testing.T) {
	got := Apply(Array(NumberT), nil)
	errT, ok := got.(*ErrorT)
	if !ok || errT.Reason != ErrNotCallable {
		t.Errorf("Apply(array(number), ...) = %v, want ErrNotCallable", got)
	}
}

func TestApplyNeverPoisons(t *testing.T) {
	if got := Apply(Never, []Type{NumberT}); got != Never {
		t.Errorf("Apply(never, ...) = %v, want Never", got)
	}
}

func TestIsConcrete(t *testing.T) {
	v := NewVariable("x")
	if IsConcrete(v) {
		t.Error("a free variable should not be concrete")
	}
	if !IsConcrete(NumberT) {
		t.Error("a primitive should be concrete")
	}
	if !IsConcrete(Array(NumberT)) {
		t.Error("array(number) should be concrete")
	}
	if IsConcrete(Array(v)) {
		t.Error("array(var) should not be concrete")
	}

	fn := &Function{Arity: 1, Mappings: []Mapping{{Bindings: []*Variable{v}, Patterns: []Type{v}, Result: v}}}
	if !IsConcrete(fn) {
		t.Error("a function whose free variables are all bound by its own mapping should be concrete")
	}
}

func TestDoesHalt(t *testing.T) {
	if DoesHalt(Never) != HaltFalse {
		t.Error("Never should never halt")
	}
	if DoesHalt(NumberT) != HaltTrue {
		t.Error("a concrete primitive should halt")
	}
	if DoesHalt(NewUnresolved("x")) != HaltUnknown {
		t.Error("an unresolved type should be undecided")
	}
	u := NewUnion([]Type{NumberT, Never})
	if DoesHalt(u) != HaltFalse {
		t.Error("a union containing Never should not halt")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(NumberT) {
		t.Error("a plain primitive should be valid")
	}
	if IsValid(NewError(ErrArity, "bad")) {
		t.Error("an error type should not be valid")
	}
	if IsValid(Array(NewError(ErrArity, "bad"))) {
		t.Error("an error nested in an array should make it invalid")
	}
}

func TestReduceAppliesFunctionToArguments(t *testing.T) {
	fn := &Function{Arity: 1, Mappings: []Mapping{{Patterns: []Type{NumberT}, Result: StringT}}}
	applied := &Applied{Receiver: fn, Args: []Type{NumberT}}
	if got := Reduce(applied); got != StringT {
		t.Errorf("Reduce(applied function) = %v, want string", got)
	}
}

func TestReduceConditionalTrueBranchWins(t *testing.T) {
	cond := &Conditional{
		Branches: []Branch{
			{Predicates: []Predicate{{Subject: NumberT, Pattern: StringT}}, Result: BoolT},
			{Predicates: nil, Result: NumberT},
		},
	}
	if got := Reduce(cond); got != NumberT {
		t.Errorf("Reduce(conditional) = %v, want number (first tautological branch)", got)
	}
}

func TestReduceConditionalAllFalseIsNever(t *testing.T) {
	cond := &Conditional{
		Branches: []Branch{
			{Predicates: []Predicate{{Subject: NumberT, Pattern: StringT}}, Result: BoolT},
		},
	}
	if got := Reduce(cond); got != Never {
		t.Errorf("Reduce(all-false conditional) = %v, want Never", got)
	}
}
