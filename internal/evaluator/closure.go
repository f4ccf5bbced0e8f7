package evaluator

import (
	"fmt"

	"github.com/cwbudde/go-aksoscript/internal/aerrors"
	"github.com/cwbudde/go-aksoscript/internal/value"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// closure is the uniform callable wrapper for a user-defined function: it
// closes over the lexical stack it was defined in (truncated to
// its own scope), the cache active at the point it was defined, and the
// ambient evaluation Context. Applying it pushes a synthetic parameter
// layer and the function's body layer, opens a fresh cache scope chained
// to the one captured at definition time, and evaluates the body's "="
// entry point.
type closure struct {
	stack     Stack
	def       *graph.Def
	definedAt *Cache
	ctx       *Context
}

func newClosure(stack Stack, ceiling int, def *graph.Def, cache *Cache, ctx *Context) *closure {
	return &closure{
		stack:     stack[:ceiling+1],
		def:       def,
		definedAt: cache,
		ctx:       ctx,
	}
}

func (c *closure) Kind() string   { return "callable" }
func (c *closure) String() string { return fmt.Sprintf("<function/%d>", len(c.def.Params)) }
func (c *closure) Arity() int     { return len(c.def.Params) }

func (c *closure) Apply(args []value.Value) (value.Value, error) {
	if len(args) != len(c.def.Params) {
		return nil, aerrors.New(aerrors.KindArityMismatch, nil, aerrors.MsgArityMismatch, len(c.def.Params), len(args))
	}
	paramLayer := make(Layer, len(c.def.Params))
	for i, p := range c.def.Params {
		paramLayer[graph.Name(p)] = Binding{Val: args[i]}
	}
	bodyLayer := layerFrom(c.def.Body)
	callStack := c.stack.WithLayer(paramLayer).WithLayer(bodyLayer)
	callCache := newCache(c.definedAt)
	return evalIdent(callStack, callStack.Top(), callCache, c.ctx, nil, graph.Entry)
}
