// Package stdlib implements the standard library: one native Callable
// value plus one polymorphic Function type per stdlib name. Every native
// is strict and checked at the value level — a wrong argument tag yields a
// zero value (usually null; false for comparisons and logic operators; 0
// for date_sub, ts_sub and ts_to_unix), never a Go error; only an arity
// mismatch is a hard error.
package stdlib

import (
	"fmt"

	"github.com/cwbudde/go-aksoscript/internal/aerrors"
	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/internal/value"
)

// Func is the signature every native built-in implements, given already
// fully-evaluated arguments.
type Func func(args []value.Value) (value.Value, error)

// Entry is one registered stdlib name: its fixed arity, its native
// implementation, and (separately, in types.go) its polymorphic type.
type Entry struct {
	Name     string
	Arity    int
	Category string
	Doc      string
	Fn       Func
}

// Native wraps an Entry as a value.Callable so it can sit directly in a
// definition layer next to user-defined functions.
type Native struct {
	entry *Entry
}

func (n *Native) Kind() string   { return "callable" }
func (n *Native) String() string { return "<builtin:" + n.entry.Name + ">" }
func (n *Native) Arity() int     { return n.entry.Arity }

func (n *Native) Apply(args []value.Value) (value.Value, error) {
	if len(args) != n.entry.Arity {
		return nil, fmt.Errorf(aerrors.MsgArityMismatch, n.entry.Arity, len(args))
	}
	return n.entry.Fn(args)
}

// Registry collects stdlib entries by name, preserving registration order
// for deterministic iteration (e.g. CLI listings).
type Registry struct {
	byName map[string]*Entry
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Entry)}
}

// Register adds one stdlib entry. Re-registering the same name overwrites
// the previous entry without disturbing its position in Names().
func (r *Registry) Register(name string, arity int, category, doc string, fn Func) {
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = &Entry{Name: name, Arity: arity, Category: category, Doc: doc, Fn: fn}
}

// Lookup returns the entry for name, if registered.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DefaultRegistry is the process-wide registry of every stdlib name,
// populated on package initialization.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry()
	RegisterAll(DefaultRegistry)
}

// RegisterAll registers every stdlib category into r, so callers may also
// build a custom registry with a restricted function set.
func RegisterAll(r *Registry) {
	registerArithmetic(r)
	registerComparison(r)
	registerLogic(r)
	registerSequence(r)
	registerDateTime(r)
	registerFormatting(r)
	registerCore(r)
}

// Values returns a value layer binding every registered name to its
// Native callable, suitable as the bottom layer of an evaluation stack.
func (r *Registry) Values() map[string]*Native {
	out := make(map[string]*Native, len(r.order))
	for _, name := range r.order {
		out[name] = &Native{entry: r.byName[name]}
	}
	return out
}

// Types returns the polymorphic Function type for every registered name.
// Defined in types.go via the typeSpecs table.
func (r *Registry) Types() map[string]*typesys.Function {
	out := make(map[string]*typesys.Function, len(r.order))
	for _, name := range r.order {
		if ctor, ok := typeSpecs[name]; ok {
			out[name] = ctor()
		}
	}
	return out
}
