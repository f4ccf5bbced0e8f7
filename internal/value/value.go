// Package value defines the runtime value domain of the evaluator: null,
// boolean, finite number, string, array, date, timestamp, and callable. All
// runtime values implement Value.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is the common interface every runtime value implements. It
// deliberately avoids interface{} so callers get static type safety on the
// value kind.
type Value interface {
	// Kind returns the value's tag name (e.g. "null", "number", "array").
	Kind() string
	// String returns a human-readable rendering, used for string coercion
	// and debug output.
	String() string
}

// Null is the unique null value.
type Null struct{}

func (Null) Kind() string   { return "null" }
func (Null) String() string { return "null" }

// NullValue is the shared null instance; it carries no state so one
// allocation serves the whole process.
var NullValue = Null{}

// Bool is a boolean value.
type Bool bool

func (b Bool) Kind() string { return "bool" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is a finite IEEE-754 double. NaN and ±Inf never appear in a valid
// Number; stdlib functions that would produce one fold it to 0 instead.
type Number float64

func (n Number) Kind() string { return "number" }
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Str is a string value.
type Str string

func (s Str) Kind() string   { return "string" }
func (s Str) String() string { return string(s) }

// Array is an ordered sequence of values.
type Array []Value

func (a Array) Kind() string { return "array" }
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Date is a calendar date with UTC semantics, serialized as an ISO-8601
// YYYY-MM-DD string.
type Date struct {
	Year, Month, Day int
}

func (d Date) Kind() string { return "date" }
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Timestamp is an opaque instant in time, stored as whole milliseconds
// since the Unix epoch so equality and ordering stay exact across
// conversions.
type Timestamp struct {
	UnixMilli int64
}

func (t Timestamp) Kind() string   { return "timestamp" }
func (t Timestamp) String() string { return strconv.FormatInt(t.UnixMilli, 10) }

// Callable is an evaluator value representing a function, either a native
// stdlib implementation or a user-defined closure. Every callable carries
// a fixed arity; invoking it with a different argument count is a hard
// error, never silent coercion.
type Callable interface {
	Value
	Arity() int
	Apply(args []Value) (Value, error)
}

// Equal implements deep-structural equality for arrays and scalars, and
// reference identity for callables.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Date:
		bv, ok := b.(Date)
		return ok && av == bv
	case Timestamp:
		bv, ok := b.(Timestamp)
		return ok && av == bv
	case Callable:
		bv, ok := b.(Callable)
		return ok && sameCallable(av, bv)
	default:
		return false
	}
}

func sameCallable(a, b Callable) bool {
	type identity interface{ identity() any }
	ia, aok := a.(identity)
	ib, bok := b.(identity)
	if aok && bok {
		return ia.identity() == ib.identity()
	}
	return fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
}

// Less implements the base ordering: strings compare byte-wise, numbers
// numerically, dates and timestamps chronologically. Type-mismatched
// comparisons have no ordering (callers treat that as "not less"). The
// stdlib's relational operators and sort use it for every pair except two
// strings, which they compare through a collator instead.
func Less(a, b Value) (bool, bool) {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av < bv, ok
	case Str:
		bv, ok := b.(Str)
		return ok && av < bv, ok
	case Date:
		bv, ok := b.(Date)
		if !ok {
			return false, false
		}
		return dateLess(av, bv), true
	case Timestamp:
		bv, ok := b.(Timestamp)
		return ok && av.UnixMilli < bv.UnixMilli, ok
	default:
		return false, false
	}
}

func dateLess(a, b Date) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

// SortValues sorts a copy of vs using Less, with stable tie-breaking on the
// string rendering so the order is deterministic even for incomparable
// members.
func SortValues(vs []Value) []Value {
	out := make([]Value, len(vs))
	copy(out, vs)
	sort.SliceStable(out, func(i, j int) bool {
		lt, ok := Less(out[i], out[j])
		if !ok {
			return out[i].String() < out[j].String()
		}
		return lt
	})
	return out
}

// Truthy reports whether v is the strict boolean true: non-boolean values
// never satisfy a switch condition; only the literal boolean true does.
func Truthy(v Value) bool {
	b, ok := v.(Bool)
	return ok && bool(b)
}
