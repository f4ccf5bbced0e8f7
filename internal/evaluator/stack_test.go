package evaluator

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/value"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

func TestNewStackLayersStdlibBeneathUser(t *testing.T) {
	stdlib := Layer{graph.Name("abs"): {Val: value.Number(0)}}
	user := graph.Layer{graph.Name("x"): {Tag: graph.TagNumber, Number: 1}}

	stack := NewStack(stdlib, []graph.Layer{user})
	if len(stack) != 2 {
		t.Fatalf("len(stack) = %d, want 2", len(stack))
	}
	if _, ok := stack[0][graph.Name("abs")]; !ok {
		t.Error("stdlib layer should be at index 0")
	}
	if _, ok := stack[1][graph.Name("x")]; !ok {
		t.Error("user layer should be at index 1")
	}
}

func TestStackLookupSearchesTopDown(t *testing.T) {
	inner := Layer{graph.Name("x"): {Val: value.Number(2)}}
	outer := Layer{graph.Name("x"): {Val: value.Number(1)}}
	stack := Stack{outer, inner}

	b, idx, ok := stack.Lookup(graph.Name("x"), stack.Top())
	if !ok || idx != 1 || b.Val != value.Number(2) {
		t.Errorf("Lookup = %v,%d,%v want inner binding at index 1", b, idx, ok)
	}
}

func TestStackLookupRespectsCeiling(t *testing.T) {
	inner := Layer{graph.Name("x"): {Val: value.Number(2)}}
	outer := Layer{graph.Name("x"): {Val: value.Number(1)}}
	stack := Stack{outer, inner}

	b, idx, ok := stack.Lookup(graph.Name("x"), 0)
	if !ok || idx != 0 || b.Val != value.Number(1) {
		t.Errorf("Lookup with ceiling 0 = %v,%d,%v want outer binding", b, idx, ok)
	}
}

func TestStackLookupNotFound(t *testing.T) {
	stack := Stack{Layer{}}
	if _, _, ok := stack.Lookup(graph.Name("missing"), 0); ok {
		t.Error("Lookup of a missing identifier should fail")
	}
}

func TestStackWithLayerDoesNotMutateOriginal(t *testing.T) {
	base := Stack{Layer{}}
	extended := base.WithLayer(Layer{graph.Name("y"): {Val: value.Number(3)}})

	if len(base) != 1 {
		t.Errorf("WithLayer mutated the original stack: %v", base)
	}
	if len(extended) != 2 {
		t.Errorf("len(extended) = %d, want 2", len(extended))
	}
}
