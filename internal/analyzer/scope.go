package analyzer

import (
	"strings"

	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// Binding is one entry of an analyzer Layer: either a graph definition
// awaiting analysis, or a type already settled (a stdlib polymorphic type,
// or a function parameter's fresh type variable).
type Binding struct {
	Def *graph.Def
	Typ typesys.Type
}

// Layer mirrors graph.Layer but can also hold pre-typed bindings.
type Layer map[graph.Ident]Binding

// Stack is the analyzer's definition-layer stack; index 0 is conventionally
// the stdlib layer.
type Stack []Layer

func layerFromDefs(l graph.Layer) Layer {
	out := make(Layer, len(l))
	for id, def := range l {
		out[id] = Binding{Def: def}
	}
	return out
}

func (s Stack) withLayer(l Layer) Stack {
	out := make(Stack, len(s)+1)
	copy(out, s)
	out[len(s)] = l
	return out
}

func isPrivate(id graph.Ident) bool {
	return !id.IsSymbol() && strings.HasPrefix(id.Text(), "_")
}

// Scope bundles the stack, the current resolution ceiling, and the
// underscore-privacy boundary: parent-scope definitions whose names begin
// with _ are hidden when analyzing a function body.
// hideUnderscoreBelow is -1 outside any function body; inside one it is the
// layer index the enclosing "f" node itself was found at, so lookups that
// would resolve at or below that layer skip underscore-prefixed names.
type Scope struct {
	Stack               Stack
	Ceiling             int
	HideUnderscoreBelow int
}

func rootScope(stack Stack) Scope {
	return Scope{Stack: stack, Ceiling: stack.top(), HideUnderscoreBelow: -1}
}

func (s Stack) top() int { return len(s) - 1 }

// lookup searches top-down from the scope's ceiling, honoring the
// underscore-privacy boundary.
func (sc Scope) lookup(id graph.Ident) (Binding, int, bool) {
	ceiling := sc.Ceiling
	if ceiling >= len(sc.Stack) {
		ceiling = len(sc.Stack) - 1
	}
	for i := ceiling; i >= 0; i-- {
		b, ok := sc.Stack[i][id]
		if !ok {
			continue
		}
		if sc.HideUnderscoreBelow >= 0 && i <= sc.HideUnderscoreBelow && isPrivate(id) {
			continue
		}
		return b, i, true
	}
	return Binding{}, -1, false
}

// enterFunction builds the child scope for a function body: the stack is
// truncated to the defining layer, then the parameter and body layers are
// pushed; everything below the defining layer becomes subject to
// underscore-hiding.
func (sc Scope) enterFunction(definedAtLayer int, params Layer, body graph.Layer) Scope {
	truncated := sc.Stack[:definedAtLayer+1]
	childStack := truncated.withLayer(params).withLayer(layerFromDefs(body))
	return Scope{Stack: childStack, Ceiling: childStack.top(), HideUnderscoreBelow: definedAtLayer}
}
