package analyzer

import (
	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// FormValueTypes resolves the type of an externally supplied form value, or
// reports not-found.
type FormValueTypes func(name string) (typesys.Type, bool)

// Context is the per-analyzeAll-call state: a node-identity
// cache, a lock map for recursion detection, and a resolve map recording
// what each recursion-induced unresolved type eventually resolved to.
// Cache and lock keys are *graph.Def pointers (true node identity), not
// identifiers, since the same identifier text (e.g. "=") names a different
// node inside every function body.
type Context struct {
	FormValues FormValueTypes

	cache   map[*graph.Def]*Report
	locks   map[*graph.Def]*typesys.Unresolved
	resolve map[*typesys.Unresolved]typesys.Type
}

// NewContext builds an empty analysis context.
func NewContext(formValues FormValueTypes) *Context {
	return &Context{
		FormValues: formValues,
		cache:      map[*graph.Def]*Report{},
		locks:      map[*graph.Def]*typesys.Unresolved{},
		resolve:    map[*typesys.Unresolved]typesys.Type{},
	}
}

func (c *Context) cached(def *graph.Def) (*Report, bool) {
	r, ok := c.cache[def]
	return r, ok
}

func (c *Context) store(def *graph.Def, r *Report) {
	c.cache[def] = r
}

func (c *Context) lockFor(def *graph.Def) (*typesys.Unresolved, bool) {
	u, locked := c.locks[def]
	return u, locked
}

func (c *Context) lock(def *graph.Def, name string) *typesys.Unresolved {
	u := typesys.NewUnresolved(name)
	c.locks[def] = u
	return u
}

func (c *Context) unlock(def *graph.Def) {
	delete(c.locks, def)
}

func (c *Context) recordResolution(u *typesys.Unresolved, t typesys.Type) {
	c.resolve[u] = t
}

// resolveType substitutes every unresolved type in t with its recorded
// resolution and reduces the result. Unresolved types
// that never got a resolution (analysis never completed for their lock)
// are left as-is; resolutions that themselves still reference the same
// unresolved placeholder are first pinned to Never so the substitution
// terminates, which is how non-terminating recursion surfaces as
// doesHalt == unknown rather than an infinite substitution loop.
func (c *Context) resolveType(t typesys.Type) typesys.Type {
	out := t
	for u, resolved := range c.resolve {
		out = substituteUnresolved(out, u, pinSelfReference(resolved, u))
	}
	return typesys.Reduce(out)
}

func pinSelfReference(t typesys.Type, self *typesys.Unresolved) typesys.Type {
	return substituteUnresolved(t, self, typesys.Never)
}

// substituteUnresolved walks t replacing every occurrence of target with
// replacement. typesys.Substitute only knows how to replace *Variable
// occurrences, so unresolved placeholders need their own walk.
func substituteUnresolved(t typesys.Type, target *typesys.Unresolved, replacement typesys.Type) typesys.Type {
	switch tt := t.(type) {
	case *typesys.Unresolved:
		if tt == target {
			return replacement
		}
		return tt
	case *typesys.Union:
		members := make([]typesys.Type, len(tt.Members()))
		for i, m := range tt.Members() {
			members[i] = substituteUnresolved(m, target, replacement)
		}
		return typesys.NewUnion(members)
	case *typesys.Applied:
		args := make([]typesys.Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = substituteUnresolved(a, target, replacement)
		}
		return &typesys.Applied{Receiver: substituteUnresolved(tt.Receiver, target, replacement), Args: args}
	case *typesys.Function:
		mappings := make([]typesys.Mapping, len(tt.Mappings))
		for i, m := range tt.Mappings {
			patterns := make([]typesys.Type, len(m.Patterns))
			for j, p := range m.Patterns {
				patterns[j] = substituteUnresolved(p, target, replacement)
			}
			mappings[i] = typesys.Mapping{Bindings: m.Bindings, Patterns: patterns, Result: substituteUnresolved(m.Result, target, replacement)}
		}
		return &typesys.Function{Arity: tt.Arity, Mappings: mappings}
	default:
		return tt
	}
}
