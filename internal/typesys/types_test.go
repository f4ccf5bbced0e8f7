package typesys

import "testing"

func TestPrimitiveSignatures(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{Never, "never"},
		{NullT, "null"},
		{BoolT, "bool"},
		{NumberT, "number"},
		{StringT, "string"},
		{ArrayCtor, "array"},
	}
	for _, tt := range tests {
		if got := tt.t.Signature(); got != tt.want {
			t.Errorf("Signature() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewUnionDedup(t *testing.T) {
	u := NewUnion([]Type{NumberT, StringT, NumberT})
	union, ok := u.(*Union)
	if !ok {
		t.Fatalf("expected *Union, got %T", u)
	}
	if len(union.Members()) != 2 {
		t.Errorf("expected 2 deduplicated members, got %d", len(union.Members()))
	}
}

func TestNewUnionCollapsesSingleton(t *testing.T) {
	if got := NewUnion([]Type{NumberT}); got != NumberT {
		t.Errorf("singleton union should collapse to member, got %v", got)
	}
	if got := NewUnion([]Type{NumberT, Never}); got != NumberT {
		t.Errorf("Never should be dropped as neutral element, got %v", got)
	}
}

func TestNewUnionEmptyIsNever(t *testing.T) {
	if got := NewUnion(nil); got != Never {
		t.Errorf("empty union should collapse to Never, got %v", got)
	}
}

func TestNewUnionFlattensNested(t *testing.T) {
	inner := NewUnion([]Type{NumberT, StringT})
	outer := NewUnion([]Type{inner, BoolT})
	union, ok := outer.(*Union)
	if !ok {
		t.Fatalf("expected *Union, got %T", outer)
	}
	if len(union.Members()) != 3 {
		t.Errorf("expected flattened union of 3 members, got %d: %v", len(union.Members()), union.Members())
	}
}

func TestArrayAndArrayElem(t *testing.T) {
	arr := Array(NumberT)
	elem, ok := ArrayElem(arr)
	if !ok || elem != NumberT {
		t.Errorf("ArrayElem(Array(number)) = %v,%v want number,true", elem, ok)
	}
	if _, ok := ArrayElem(NumberT); ok {
		t.Error("ArrayElem(number) should report not an array")
	}
}

func TestVariableSignatureUnique(t *testing.T) {
	a := NewVariable("x")
	b := NewVariable("x")
	if a.Signature() == b.Signature() {
		t.Error("distinct variables with the same name should have distinct signatures")
	}
}

func TestFunctionSignature(t *testing.T) {
	fn := &Function{
		Arity: 1,
		Mappings: []Mapping{
			{Patterns: []Type{NumberT}, Result: StringT},
		},
	}
	want := "fn[(number)->string]"
	if got := fn.Signature(); got != want {
		t.Errorf("Signature() = %q, want %q", got, want)
	}
}

func TestErrorTSignature(t *testing.T) {
	e := NewError(ErrArity, "want 2 args, got 1")
	if got := e.Signature(); got != "error:arity" {
		t.Errorf("Signature() = %q, want error:arity", got)
	}
}
