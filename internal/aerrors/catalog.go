// Package aerrors provides the error taxonomy shared by the evaluator and
// the analyzer, plus a message catalog and a path-aware error type used to
// report where in a definition graph a failure occurred.
package aerrors

// Kind enumerates the error taxonomy.
type Kind string

const (
	KindNotInScope       Kind = "NOT_IN_SCOPE"
	KindLeadingAtIdent   Kind = "LEADING_AT_IDENT"
	KindUnknownDefType   Kind = "UNKNOWN_DEF_TYPE"
	KindTypeError        Kind = "TYPE_ERROR"
	KindUndefinedIdent   Kind = "UndefinedIdentifier"
	KindArityMismatch    Kind = "ArityMismatch"
	KindAborted          Kind = "Aborted"
)

// Message catalog: lowercase, present-tense, parametric with fmt verbs,
// grouped by concern.
const (
	MsgNotInScope     = "identifier not in scope: %s"
	MsgLeadingAtIdent = "leading '@' identifier used where a definition was expected: %s"
	MsgUnknownTag     = "unknown definition tag: %q"
	MsgTypeError      = "type error: %s"
	MsgUndefinedIdent = "undefined identifier at runtime: %s"
	MsgArityMismatch  = "wrong number of arguments: expected %d, got %d"
	MsgAborted        = "evaluation aborted: halt predicate returned true"
	MsgNotCallable    = "value is not callable: %s"
	MsgDivByZero      = "division by zero"
)
