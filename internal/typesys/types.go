// Package typesys implements the analyzer's polymorphic type algebra:
// primitive types, type variables, unions, applied type constructors,
// pattern-mapping function types, predicate-guarded conditional types,
// deferred "unresolved" recursion placeholders, and the error sentinel.
package typesys

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the concrete shape of a Type.
type Kind int

const (
	KindNever Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArrayCtor // the "array" type constructor, only meaningful applied
	KindVariable
	KindUnion
	KindApplied
	KindFunction
	KindFuncPattern // matches any function of a fixed arity; mapping-pattern only
	KindConditional
	KindUnresolved
	KindError
)

// Type is the common interface every member of the type algebra
// implements. Signature is the canonical textual form used as the
// equality key for union deduplication.
type Type interface {
	Kind() Kind
	Signature() string
}

// Primitive covers the fixed, singleton primitive types plus the "array"
// type constructor, which only appears applied.
type Primitive struct{ kind Kind }

func (p *Primitive) Kind() Kind { return p.kind }

func (p *Primitive) Signature() string {
	switch p.kind {
	case KindNever:
		return "never"
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArrayCtor:
		return "array"
	default:
		return "?primitive"
	}
}

// Singleton primitive instances. Comparisons against these use pointer
// identity, which is safe since the package never constructs a second
// *Primitive of the same kind.
var (
	Never     = &Primitive{kind: KindNever}
	NullT     = &Primitive{kind: KindNull}
	BoolT     = &Primitive{kind: KindBool}
	NumberT   = &Primitive{kind: KindNumber}
	StringT   = &Primitive{kind: KindString}
	ArrayCtor = &Primitive{kind: KindArrayCtor}
)

// Variable is a fresh type variable. Equality is by pointer identity; Name
// is carried only so signatures stay readable.
type Variable struct {
	Name string
}

// NewVariable mints a fresh type variable.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (v *Variable) Kind() Kind { return KindVariable }
func (v *Variable) Signature() string {
	return fmt.Sprintf("%s#%p", v.Name, v)
}

// Union is a deduplicated set of alternative types. Use NewUnion to build
// one; the invariants (empty -> never, singleton -> collapsed) are
// maintained there so a *Union value always has at least two members.
type Union struct {
	members []Type
}

// NewUnion builds the union of ts, flattening nested unions, dropping
// Never (the neutral element: "x or never" is just "x"), and deduplicating
// by signature. An empty or all-Never input collapses to Never; a single
// surviving member collapses to that member directly.
func NewUnion(ts []Type) Type {
	var flat []Type
	var flatten func(Type)
	flatten = func(t Type) {
		if u, ok := t.(*Union); ok {
			for _, m := range u.members {
				flatten(m)
			}
			return
		}
		if t == Never {
			return
		}
		flat = append(flat, t)
	}
	for _, t := range ts {
		flatten(t)
	}

	seen := make(map[string]Type, len(flat))
	order := make([]string, 0, len(flat))
	for _, t := range flat {
		sig := t.Signature()
		if _, ok := seen[sig]; !ok {
			seen[sig] = t
			order = append(order, sig)
		}
	}
	switch len(order) {
	case 0:
		return Never
	case 1:
		return seen[order[0]]
	default:
		sort.Strings(order)
		members := make([]Type, len(order))
		for i, sig := range order {
			members[i] = seen[sig]
		}
		return &Union{members: members}
	}
}

func (u *Union) Members() []Type { return u.members }
func (u *Union) Kind() Kind      { return KindUnion }
func (u *Union) Signature() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = m.Signature()
	}
	sort.Strings(parts)
	return "union(" + strings.Join(parts, "|") + ")"
}

// Applied is a type constructor applied to argument types, e.g. array(X).
type Applied struct {
	Receiver Type
	Args     []Type
}

func (a *Applied) Kind() Kind { return KindApplied }
func (a *Applied) Signature() string {
	parts := make([]string, len(a.Args))
	for i, t := range a.Args {
		parts[i] = t.Signature()
	}
	return a.Receiver.Signature() + "(" + strings.Join(parts, ",") + ")"
}

// Array is a convenience constructor for an applied array type.
func Array(elem Type) Type {
	return &Applied{Receiver: ArrayCtor, Args: []Type{elem}}
}

// ArrayElem returns the element type of an applied array type, or nil if t
// is not one.
func ArrayElem(t Type) (Type, bool) {
	a, ok := t.(*Applied)
	if !ok || a.Receiver != ArrayCtor || len(a.Args) != 1 {
		return nil, false
	}
	return a.Args[0], true
}

// Mapping is one pattern-matching arm of a function type.
// Bindings lists the pattern variables introduced by Patterns; Result may
// reference them.
type Mapping struct {
	Bindings []*Variable
	Patterns []Type
	Result   Type
}

// Function is a polymorphic function type: an ordered list of mappings,
// all sharing the same arity.
type Function struct {
	Arity    int
	Mappings []Mapping
}

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) Signature() string {
	parts := make([]string, len(f.Mappings))
	for i, m := range f.Mappings {
		pparts := make([]string, len(m.Patterns))
		for j, p := range m.Patterns {
			pparts[j] = p.Signature()
		}
		parts[i] = "(" + strings.Join(pparts, ",") + ")->" + m.Result.Signature()
	}
	return "fn[" + strings.Join(parts, ";") + "]"
}

// FuncPattern is a mapping-pattern that matches any function of the given
// arity, optionally binding the whole matched function type to Bind.
type FuncPattern struct {
	Arity int
	Bind  *Variable
}

func (f *FuncPattern) Kind() Kind      { return KindFuncPattern }
func (f *FuncPattern) Signature() string { return fmt.Sprintf("fnpat(%d)", f.Arity) }

// Predicate guards one branch of a Conditional: Subject must match Pattern
// for the branch to apply. Subject usually starts life as a *Variable and
// becomes a concrete type once Substitute resolves it, at which point
// Reduce can decide the branch statically.
type Predicate struct {
	Subject Type
	Pattern Type
}

// Branch is one predicate-guarded arm of a Conditional.
type Branch struct {
	Predicates []Predicate
	Result     Type
}

// Conditional is an ordered set of predicate-guarded result types, used
// internally while reducing applications of polymorphic stdlib mappings.
type Conditional struct {
	Branches []Branch
}

func (c *Conditional) Kind() Kind { return KindConditional }
func (c *Conditional) Signature() string {
	parts := make([]string, len(c.Branches))
	for i, b := range c.Branches {
		pparts := make([]string, len(b.Predicates))
		for j, p := range b.Predicates {
			pparts[j] = p.Subject.Signature() + "~" + p.Pattern.Signature()
		}
		parts[i] = "[" + strings.Join(pparts, "&") + "]=>" + b.Result.Signature()
	}
	return "cond(" + strings.Join(parts, ";") + ")"
}

// Unresolved is a placeholder emitted when a definition's analysis locks
// itself during recursion. A later resolve pass replaces
// every occurrence with the definition's eventual computed type.
type Unresolved struct {
	Name string
}

// NewUnresolved mints a fresh unresolved type bound to a recursion lock.
func NewUnresolved(name string) *Unresolved { return &Unresolved{Name: name} }

func (u *Unresolved) Kind() Kind      { return KindUnresolved }
func (u *Unresolved) Signature() string { return fmt.Sprintf("unresolved:%s#%p", u.Name, u) }

// ErrorReason names why an ErrorT was produced.
type ErrorReason string

const (
	ErrUndefined    ErrorReason = "undefined"     // no mapping matched and no type variable was involved
	ErrArity        ErrorReason = "arity"         // wrong arity
	ErrNotCallable  ErrorReason = "not-callable"  // applied a non-function, non-primitive, non-unresolved receiver
)

// ErrorT is the sentinel "no mapping matches" / "wrong arity" type. It
// propagates through reduction and makes IsValid false wherever it
// appears.
type ErrorT struct {
	Reason ErrorReason
	Detail string
}

func (e *ErrorT) Kind() Kind { return KindError }
func (e *ErrorT) Signature() string {
	return "error:" + string(e.Reason)
}

// NewError builds an error type carrying a human-readable detail.
func NewError(reason ErrorReason, detail string) *ErrorT {
	return &ErrorT{Reason: reason, Detail: detail}
}
