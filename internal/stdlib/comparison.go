package stdlib

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cwbudde/go-aksoscript/internal/value"
)

const CategoryComparison = "comparison"

// stringCollator backs the string-ordering path of the relational
// operators. collate.New(language.Und) applies the root collation table of
// the "undetermined locale" rather than byte-wise order: letters compare
// case-insensitively first (so "a" sorts before "B"), with case only
// breaking ties, and digits inside strings still compare character by
// character. Collator methods aren't safe for concurrent use, so access is
// serialized.
var (
	collatorMu    sync.Mutex
	stringCollator = collate.New(language.Und)
)

func lessOrdered(a, b value.Value) (bool, bool) {
	as, aok := a.(value.Str)
	bs, bok := b.(value.Str)
	if aok && bok {
		collatorMu.Lock()
		cmp := stringCollator.CompareString(string(as), string(bs))
		collatorMu.Unlock()
		return cmp < 0, true
	}
	return value.Less(a, b)
}

// sortValuesOrdered sorts a copy of vs through the same locale-aware string
// comparison the relational operators use, so "sort"/"min"/"max"/"med" agree
// with "<" on string ordering instead of falling back to raw byte order.
// Ties (including incomparable members) break on string rendering, matching
// value.SortValues's own tie-breaking rule.
func sortValuesOrdered(vs []value.Value) []value.Value {
	out := make([]value.Value, len(vs))
	copy(out, vs)
	sort.SliceStable(out, func(i, j int) bool {
		lt, ok := lessOrdered(out[i], out[j])
		if !ok {
			return out[i].String() < out[j].String()
		}
		return lt
	})
	return out
}

func registerComparison(r *Registry) {
	r.Register("==", 2, CategoryComparison, "deep-structural equality", func(args []value.Value) (value.Value, error) {
		return value.Bool(value.Equal(args[0], args[1])), nil
	})
	r.Register("!=", 2, CategoryComparison, "negated deep-structural equality", func(args []value.Value) (value.Value, error) {
		return value.Bool(!value.Equal(args[0], args[1])), nil
	})
	r.Register(">", 2, CategoryComparison, "strictly greater than", func(args []value.Value) (value.Value, error) {
		lt, ok := lessOrdered(args[1], args[0])
		return value.Bool(ok && lt), nil
	})
	r.Register("<", 2, CategoryComparison, "strictly less than", func(args []value.Value) (value.Value, error) {
		lt, ok := lessOrdered(args[0], args[1])
		return value.Bool(ok && lt), nil
	})
	r.Register(">=", 2, CategoryComparison, "greater than or equal", func(args []value.Value) (value.Value, error) {
		lt, ok := lessOrdered(args[0], args[1])
		return value.Bool(ok && !lt), nil
	})
	r.Register("<=", 2, CategoryComparison, "less than or equal", func(args []value.Value) (value.Value, error) {
		lt, ok := lessOrdered(args[1], args[0])
		return value.Bool(ok && !lt), nil
	})
}
