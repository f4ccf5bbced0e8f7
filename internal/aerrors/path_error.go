package aerrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// PathError is the error value both the evaluator and the analyzer return:
// it names which taxonomy Kind fired, the chain of identifiers
// traversed to reach the failure, and a human-readable message.
type PathError struct {
	Kind    Kind
	Path    []graph.Ident
	Message string
}

func (e *PathError) Error() string {
	return e.Format()
}

// Format renders the identifier chain as a breadcrumb trail followed by
// the message, the way a compiler error renders a source position.
func (e *PathError) Format() string {
	var sb strings.Builder
	if len(e.Path) > 0 {
		parts := make([]string, len(e.Path))
		for i, id := range e.Path {
			parts[i] = id.String()
		}
		sb.WriteString(strings.Join(parts, " -> "))
		sb.WriteString(": ")
	}
	sb.WriteString(string(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

// New builds a PathError with a formatted message.
func New(kind Kind, path []graph.Ident, format string, args ...any) *PathError {
	return &PathError{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}

// WithIdent returns a copy of the path with id appended, used as callers
// descend into a node's children.
func WithIdent(path []graph.Ident, id graph.Ident) []graph.Ident {
	out := make([]graph.Ident, len(path)+1)
	copy(out, path)
	out[len(path)] = id
	return out
}
