package evaluator

import (
	"github.com/cwbudde/go-aksoscript/internal/aerrors"
	"github.com/cwbudde/go-aksoscript/internal/stdlib"
	"github.com/cwbudde/go-aksoscript/internal/value"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// Options configures one Evaluate call.
type Options struct {
	// ShouldHalt is queried before every reduction step; a true result
	// aborts evaluation. Nil is treated as always-false.
	ShouldHalt func() bool
	// Debug toggles warning-verbosity only; it never changes semantics.
	Debug bool
}

// Evaluate is the evaluator's public entry point: it layers the
// stdlib under layers, then reduces id to a concrete value.
func Evaluate(layers []graph.Layer, id graph.Ident, getFormValue func(string) value.Value, opts Options) (value.Value, error) {
	stack := NewStack(stdlibLayer(), layers)
	ctx := &Context{ShouldHalt: opts.ShouldHalt, GetFormValue: getFormValue}
	cache := newCache(nil)
	return evalIdent(stack, stack.Top(), cache, ctx, nil, id)
}

func stdlibLayer() Layer {
	natives := stdlib.DefaultRegistry.Values()
	out := make(Layer, len(natives))
	for name, n := range natives {
		out[graph.Name(name)] = Binding{Val: n}
	}
	return out
}

// evalIdent resolves id, top-down from ceiling, then evaluates and caches
// its definition if not already cached.
func evalIdent(stack Stack, ceiling int, cache *Cache, ctx *Context, path []graph.Ident, id graph.Ident) (value.Value, error) {
	if ctx.checkHalt() {
		return nil, aerrors.New(aerrors.KindAborted, path, aerrors.MsgAborted)
	}
	if id.IsFormValue() {
		return ctx.formValue(id.FormName()), nil
	}
	if v, ok := cache.lookup(id); ok {
		return v, nil
	}
	binding, layerIdx, found := stack.Lookup(id, ceiling)
	if !found {
		return nil, aerrors.New(aerrors.KindUndefinedIdent, aerrors.WithIdent(path, id), aerrors.MsgUndefinedIdent, id.String())
	}
	var result value.Value
	var err error
	if binding.Val != nil {
		result = binding.Val
	} else {
		result, err = evalDef(stack, layerIdx, cache, ctx, aerrors.WithIdent(path, id), binding.Def)
		if err != nil {
			return nil, err
		}
	}
	cache.store(id, result)
	return result, nil
}

// evalDef evaluates one definition node. ceiling is the layer index id was
// found at, so the node's own internal references resolve relative to its
// own scope, not the caller's.
func evalDef(stack Stack, ceiling int, cache *Cache, ctx *Context, path []graph.Ident, def *graph.Def) (value.Value, error) {
	switch def.Tag {
	case graph.TagNull:
		return value.NullValue, nil
	case graph.TagBool:
		return value.Bool(def.Bool), nil
	case graph.TagNumber:
		return value.Number(def.Number), nil
	case graph.TagString:
		return value.Str(def.Str), nil
	case graph.TagArray:
		return evalLiteralArray(def.Literal), nil
	case graph.TagList:
		elems := make([]value.Value, len(def.Refs))
		for i, ref := range def.Refs {
			v, err := evalIdent(stack, ceiling, cache, ctx, path, ref)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.Array(elems), nil
	case graph.TagCall:
		return evalCall(stack, ceiling, cache, ctx, path, def)
	case graph.TagFunc:
		return newClosure(stack, ceiling, def, cache, ctx), nil
	case graph.TagSwitch:
		return evalSwitch(stack, ceiling, cache, ctx, path, def)
	default:
		return nil, aerrors.New(aerrors.KindUnknownDefType, path, aerrors.MsgUnknownTag, string(def.Tag))
	}
}

func evalLiteralArray(lits []graph.Literal) value.Value {
	out := make(value.Array, len(lits))
	for i, l := range lits {
		out[i] = evalLiteral(l)
	}
	return out
}

func evalLiteral(l graph.Literal) value.Value {
	switch l.Kind {
	case graph.LiteralBool:
		return value.Bool(l.Bool)
	case graph.LiteralNumber:
		return value.Number(l.Number)
	case graph.LiteralString:
		return value.Str(l.Str)
	case graph.LiteralArray:
		return evalLiteralArray(l.Array)
	default:
		return value.NullValue
	}
}

// evalCall evaluates the callee first, then each argument left-to-right.
// A non-callable callee with zero arguments yields the value directly;
// with any arguments, it is a hard error.
func evalCall(stack Stack, ceiling int, cache *Cache, ctx *Context, path []graph.Ident, def *graph.Def) (value.Value, error) {
	callee, err := evalIdent(stack, ceiling, cache, ctx, path, def.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(def.Args))
	for i, a := range def.Args {
		v, err := evalIdent(stack, ceiling, cache, ctx, path, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	callable, ok := callee.(value.Callable)
	if !ok {
		if len(args) == 0 {
			return callee, nil
		}
		return nil, aerrors.New(aerrors.KindArityMismatch, path, aerrors.MsgNotCallable, callee.String())
	}
	return callable.Apply(args)
}

// evalSwitch returns the first case whose condition evaluates to strict
// boolean true (an absent condition counts as the default, always-true
// case); no matching case yields null.
func evalSwitch(stack Stack, ceiling int, cache *Cache, ctx *Context, path []graph.Ident, def *graph.Def) (value.Value, error) {
	for _, cs := range def.Cases {
		matched := true
		if cs.HasCond {
			v, err := evalIdent(stack, ceiling, cache, ctx, path, cs.Cond)
			if err != nil {
				return nil, err
			}
			matched = value.Truthy(v)
		}
		if matched {
			return evalIdent(stack, ceiling, cache, ctx, path, cs.Value)
		}
	}
	return value.NullValue, nil
}
