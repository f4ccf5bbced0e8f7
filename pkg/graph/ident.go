// Package graph defines the wire-visible definition graph format: the
// JSON-like mapping of identifiers to tagged definition nodes that a host
// hands to the evaluator or the analyzer.
package graph

import "strings"

// Symbol is an opaque, host-minted identifier used for hidden or internal
// definitions that must never collide with a string name supplied by a
// program author. Symbols never cross the JSON boundary; only strings do.
type Symbol struct {
	tag string
}

// NewSymbol mints a fresh symbol. tag is used only for debug printing;
// identity is pointer equality.
func NewSymbol(tag string) *Symbol {
	return &Symbol{tag: tag}
}

func (s *Symbol) String() string {
	if s == nil {
		return "#<nil>"
	}
	return "#" + s.tag
}

// Ident is a definition key: either a plain string name or a symbol.
// It is comparable and usable directly as a map key.
type Ident struct {
	name   string
	symbol *Symbol
}

// Name builds a string-keyed identifier.
func Name(name string) Ident { return Ident{name: name} }

// Sym builds a symbol-keyed identifier.
func Sym(s *Symbol) Ident { return Ident{symbol: s} }

// IsSymbol reports whether this identifier is symbol-keyed.
func (id Ident) IsSymbol() bool { return id.symbol != nil }

// IsFormValue reports whether this identifier denotes an externally
// supplied form value (a string starting with '@'). Symbols are never
// form values.
func (id Ident) IsFormValue() bool {
	return id.symbol == nil && strings.HasPrefix(id.name, "@")
}

// FormName returns the name stripped of its leading '@', valid only when
// IsFormValue is true.
func (id Ident) FormName() string {
	return strings.TrimPrefix(id.name, "@")
}

// Text returns the underlying string name. Valid only for string-keyed
// identifiers; returns "" for symbols.
func (id Ident) Text() string { return id.name }

func (id Ident) String() string {
	if id.symbol != nil {
		return id.symbol.String()
	}
	return id.name
}

// Entry is the well-known identifier for a function body's result
// expression (the "=" entry inside an "f" node's body layer).
var Entry = Name("=")
