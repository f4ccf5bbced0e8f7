// Package evaluator implements the lazily-scoped, cached definition reducer:
// it turns a definition graph plus a form-value provider into concrete
// values, with at-most-one evaluation per (scope, node) and termination
// guarded by a halt predicate.
package evaluator

import (
	"github.com/cwbudde/go-aksoscript/internal/value"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// Binding is one entry of an evaluator Layer: either a graph definition
// still awaiting evaluation, or a value already final (a stdlib native, or
// a function parameter bound at call time).
type Binding struct {
	Def *graph.Def
	Val value.Value
}

// Layer is one scope's worth of bindings, keyed by identifier exactly like
// graph.Layer, but able to hold pre-evaluated values alongside raw nodes.
type Layer map[graph.Ident]Binding

// Stack is an ordered list of layers, bottom to top; index 0 is
// conventionally the stdlib layer.
type Stack []Layer

// NewStack builds the evaluation stack for one evaluate call: the stdlib
// layer on the bottom, then the user-supplied layers in order.
func NewStack(stdlib Layer, userLayers []graph.Layer) Stack {
	out := make(Stack, 0, 1+len(userLayers))
	out = append(out, stdlib)
	for _, l := range userLayers {
		conv := make(Layer, len(l))
		for id, def := range l {
			conv[id] = Binding{Def: def}
		}
		out = append(out, conv)
	}
	return out
}

// Lookup searches the stack top-down starting at ceiling (inclusive) and
// reports the binding, the layer index it was found at, and whether it was
// found at all. The layer index becomes the ceiling for evaluating that
// binding's own internal references, so subsequent references use that
// scope as their ceiling.
func (s Stack) Lookup(id graph.Ident, ceiling int) (Binding, int, bool) {
	if ceiling >= len(s) {
		ceiling = len(s) - 1
	}
	for i := ceiling; i >= 0; i-- {
		if b, ok := s[i][id]; ok {
			return b, i, true
		}
	}
	return Binding{}, -1, false
}

// Top returns the index of the topmost layer.
func (s Stack) Top() int { return len(s) - 1 }

// WithLayer pushes an additional layer on top of the stack, returning a new
// stack so the caller's own slice is never mutated.
func (s Stack) WithLayer(l Layer) Stack {
	out := make(Stack, len(s)+1)
	copy(out, s)
	out[len(s)] = l
	return out
}

// layerFrom converts a graph.Layer (raw definitions) into an evaluator
// Layer of not-yet-evaluated bindings.
func layerFrom(l graph.Layer) Layer {
	out := make(Layer, len(l))
	for id, def := range l {
		out[id] = Binding{Def: def}
	}
	return out
}
