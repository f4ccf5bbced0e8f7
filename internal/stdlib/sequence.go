package stdlib

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-aksoscript/internal/value"
)

const CategorySequence = "sequence"

// elementsOf explodes v into its member values. An Array yields its
// elements; a Str yields one single-rune Str per code point, after NFC
// normalization so a base rune plus a combining mark that has a precomposed
// form explodes as one element instead of two (a sequence with no
// precomposed form still explodes rune by rune); anything else is treated as
// a singleton sequence so unary sequence ops stay total — a non-iterable
// argument makes the mapping apply once as if the argument were a
// singleton.
func elementsOf(v value.Value) []value.Value {
	switch vv := v.(type) {
	case value.Array:
		return []value.Value(vv)
	case value.Str:
		runes := []rune(norm.NFC.String(string(vv)))
		out := make([]value.Value, len(runes))
		for i, r := range runes {
			out[i] = value.Str(string(r))
		}
		return out
	default:
		return []value.Value{v}
	}
}

// reassemble converts a result element list back to a string when every
// element is itself a string, and to an array otherwise. The rebuilt
// string is NFC-normalized so concatenating already-normalized pieces
// can't reintroduce a decomposed sequence at the join point.
func reassemble(elems []value.Value) value.Value {
	if len(elems) == 0 {
		return value.Array{}
	}
	var sb strings.Builder
	allStrings := true
	for _, e := range elems {
		s, ok := e.(value.Str)
		if !ok {
			allStrings = false
			break
		}
		sb.WriteString(string(s))
	}
	if allStrings {
		return value.Str(norm.NFC.String(sb.String()))
	}
	return value.Array(append([]value.Value(nil), elems...))
}

func asCallable(v value.Value) (value.Callable, bool) {
	c, ok := v.(value.Callable)
	return c, ok
}

func registerSequence(r *Registry) {
	r.Register("map", 2, CategorySequence, "apply fn to every element", func(args []value.Value) (value.Value, error) {
		fn, ok := asCallable(args[1])
		if !ok {
			return value.NullValue, nil
		}
		elems := elementsOf(args[0])
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			v, err := fn.Apply([]value.Value{e})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return reassemble(out), nil
	})

	r.Register("flat_map", 2, CategorySequence, "apply fn then flatten its sequence results", func(args []value.Value) (value.Value, error) {
		fn, ok := asCallable(args[1])
		if !ok {
			return value.NullValue, nil
		}
		elems := elementsOf(args[0])
		var out []value.Value
		for _, e := range elems {
			v, err := fn.Apply([]value.Value{e})
			if err != nil {
				return nil, err
			}
			out = append(out, elementsOf(v)...)
		}
		return reassemble(out), nil
	})

	r.Register("fold", 3, CategorySequence, "left fold with an explicit initial accumulator", func(args []value.Value) (value.Value, error) {
		fn, ok := asCallable(args[2])
		if !ok {
			return value.NullValue, nil
		}
		acc := args[1]
		for _, e := range elementsOf(args[0]) {
			v, err := fn.Apply([]value.Value{acc, e})
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	})

	r.Register("fold1", 2, CategorySequence, "left fold seeded with the first element", func(args []value.Value) (value.Value, error) {
		fn, ok := asCallable(args[1])
		if !ok {
			return value.NullValue, nil
		}
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return value.NullValue, nil
		}
		acc := elems[0]
		for _, e := range elems[1:] {
			v, err := fn.Apply([]value.Value{acc, e})
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	})

	r.Register("filter", 2, CategorySequence, "keep elements where fn is true", func(args []value.Value) (value.Value, error) {
		fn, ok := asCallable(args[1])
		if !ok {
			return value.NullValue, nil
		}
		var out []value.Value
		for _, e := range elementsOf(args[0]) {
			v, err := fn.Apply([]value.Value{e})
			if err != nil {
				return nil, err
			}
			if value.Truthy(v) {
				out = append(out, e)
			}
		}
		return reassemble(out), nil
	})

	r.Register("index", 2, CategorySequence, "element at position i, null if out of range", func(args []value.Value) (value.Value, error) {
		n, ok := asNumber(args[1])
		if !ok {
			return value.NullValue, nil
		}
		elems := elementsOf(args[0])
		i := int(n)
		if i < 0 || i >= len(elems) {
			return value.NullValue, nil
		}
		return elems[i], nil
	})

	r.Register("find_index", 2, CategorySequence, "index of first element satisfying fn, else -1", func(args []value.Value) (value.Value, error) {
		fn, ok := asCallable(args[1])
		if !ok {
			return value.Number(-1), nil
		}
		for i, e := range elementsOf(args[0]) {
			v, err := fn.Apply([]value.Value{e})
			if err != nil {
				return nil, err
			}
			if value.Truthy(v) {
				return value.Number(i), nil
			}
		}
		return value.Number(-1), nil
	})

	r.Register("length", 1, CategorySequence, "number of elements", func(args []value.Value) (value.Value, error) {
		return value.Number(len(elementsOf(args[0]))), nil
	})

	r.Register("contains", 2, CategorySequence, "membership by deep equality", func(args []value.Value) (value.Value, error) {
		for _, e := range elementsOf(args[0]) {
			if value.Equal(e, args[1]) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	})

	r.Register("head", 1, CategorySequence, "first element, null if empty", func(args []value.Value) (value.Value, error) {
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return value.NullValue, nil
		}
		return elems[0], nil
	})

	r.Register("tail", 1, CategorySequence, "all but the first element", func(args []value.Value) (value.Value, error) {
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return reassemble(nil), nil
		}
		return reassemble(elems[1:]), nil
	})

	r.Register("sort", 1, CategorySequence, "ascending sort", func(args []value.Value) (value.Value, error) {
		return reassemble(sortValuesOrdered(elementsOf(args[0]))), nil
	})

	r.Register("sum", 1, CategorySequence, "sum of numeric elements", func(args []value.Value) (value.Value, error) {
		var total float64
		for _, e := range elementsOf(args[0]) {
			if n, ok := asNumber(e); ok {
				total += float64(n)
			}
		}
		return value.Number(total), nil
	})

	r.Register("min", 1, CategorySequence, "smallest element, null if empty", func(args []value.Value) (value.Value, error) {
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return value.NullValue, nil
		}
		sorted := sortValuesOrdered(elems)
		return sorted[0], nil
	})

	r.Register("max", 1, CategorySequence, "largest element, null if empty", func(args []value.Value) (value.Value, error) {
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return value.NullValue, nil
		}
		sorted := sortValuesOrdered(elems)
		return sorted[len(sorted)-1], nil
	})

	r.Register("avg", 1, CategorySequence, "arithmetic mean of numeric elements", func(args []value.Value) (value.Value, error) {
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return value.Number(0), nil
		}
		var total float64
		for _, e := range elems {
			if n, ok := asNumber(e); ok {
				total += float64(n)
			}
		}
		return value.Number(total / float64(len(elems))), nil
	})

	r.Register("med", 1, CategorySequence, "median element", func(args []value.Value) (value.Value, error) {
		elems := elementsOf(args[0])
		if len(elems) == 0 {
			return value.NullValue, nil
		}
		sorted := sortValuesOrdered(elems)
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid], nil
		}
		a, aok := asNumber(sorted[mid-1])
		b, bok := asNumber(sorted[mid])
		if aok && bok {
			return value.Number((float64(a) + float64(b)) / 2), nil
		}
		return sorted[mid-1], nil
	})

	r.Register("++", 2, CategorySequence, "concatenate two sequences", func(args []value.Value) (value.Value, error) {
		out := append(append([]value.Value{}, elementsOf(args[0])...), elementsOf(args[1])...)
		return reassemble(out), nil
	})
}
