package stdlib

import "github.com/cwbudde/go-aksoscript/internal/typesys"

// typeSpecs gives the polymorphic Function type for every stdlib name,
// each value having a matching type specification. Each entry is a
// constructor rather than a shared value so every lookup gets fresh type
// variables instead of aliasing a previous caller's bindings.
var typeSpecs = map[string]func() *typesys.Function{
	// arithmetic
	"+":     binaryNumericType,
	"-":     binaryNumericType,
	"*":     binaryNumericType,
	"/":     binaryNumericType,
	"^":     binaryNumericType,
	"mod":   binaryNumericType,
	"floor": unaryNumericType,
	"ceil":  unaryNumericType,
	"round": unaryNumericType,
	"trunc": unaryNumericType,
	"sign":  unaryNumericType,
	"abs":   unaryNumericType,

	// comparison
	"==": equalityType,
	"!=": equalityType,
	">":  orderingType,
	"<":  orderingType,
	">=": orderingType,
	"<=": orderingType,

	// logic
	"and": binaryBoolType,
	"or":  binaryBoolType,
	"xor": binaryBoolType,
	"not": unaryBoolType,

	// sequence
	"map":        mapType,
	"flat_map":   flatMapType,
	"fold":       foldType,
	"fold1":      fold1Type,
	"filter":     filterType,
	"index":      indexType,
	"find_index": findIndexType,
	"length":     lengthType,
	"contains":   containsType,
	"head":       headType,
	"tail":       tailType,
	"sort":       sortType,
	"sum":        numberArrayReduceType,
	"min":        sameElementReduceType,
	"max":        sameElementReduceType,
	"avg":        numberArrayReduceType,
	"med":        sameElementReduceType,
	"++":         concatType,

	// date/time
	"date_sub":     dateSubType,
	"date_add":     dateAddType,
	"date_today":   dateTodayType,
	"date_fmt":     dateFmtType,
	"date_get":     dateGetType,
	"date_set":     dateSetType,
	"ts_now":       tsNowType,
	"tz_utc":       tzType,
	"tz_local":     tzType,
	"ts_from_unix": tsFromUnixType,
	"ts_to_unix":   tsToUnixType,
	"ts_from_date": tsFromDateType,
	"ts_to_date":   tsToDateType,
	"ts_parse":     tsParseType,
	"ts_to_string": tsToStringType,
	"ts_fmt":       tsFmtType,
	"ts_add":       tsAddType,
	"ts_sub":       tsSubType,
	"ts_get":       tsGetType,
	"ts_set":       tsSetType,

	// formatting
	"currency_fmt": currencyFmtType,
	"country_fmt":  countryFmtType,
	"phone_fmt":    phoneFmtType,

	// core
	"if": ifType,
	"id": idType,
}

func binaryNumericType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT, typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func unaryNumericType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func equalityType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{a, a},
		Result:   typesys.BoolT,
	})
}

func orderingType() *typesys.Function {
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.NumberT, typesys.NumberT}, Result: typesys.BoolT},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, typesys.StringT}, Result: typesys.BoolT},
	)
}

func binaryBoolType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.BoolT, typesys.BoolT},
		Result:   typesys.BoolT,
	})
}

func unaryBoolType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.BoolT},
		Result:   typesys.BoolT,
	})
}

// mapType covers both sequence forms. The callback is matched structurally
// by arity only (typesys.FuncPattern), then its concrete return type is
// deferred into the result via an Applied stub that Reduce resolves once
// the callback's own type is known — the same deferred-application
// mechanism a user-defined function's body uses when it closes over a
// still-abstract parameter. Over array(a) the result is array(callback's
// return type). Over a string the callback always receives a single
// grapheme (StringT); when it also returns a string the mapped result
// reassembles back to a string, matching reassemble's rule for the common
// string-to-string case.
func mapType() *typesys.Function {
	a := typesys.NewVariable("a")
	fn, strFn := typesys.NewVariable("fn"), typesys.NewVariable("fn")
	return typesys.NewPolyFn(
		typesys.Row{
			Patterns: []typesys.Type{typesys.Array(a), &typesys.FuncPattern{Arity: 1, Bind: fn}},
			Result:   typesys.Array(&typesys.Applied{Receiver: fn, Args: []typesys.Type{a}}),
		},
		typesys.Row{
			Patterns: []typesys.Type{typesys.StringT, &typesys.FuncPattern{Arity: 1, Bind: strFn}},
			Result:   &typesys.Applied{Receiver: strFn, Args: []typesys.Type{typesys.StringT}},
		},
	)
}

// flatMapType defers to the callback's own return type directly (it is
// already array-shaped in the canonical a -> array(b) usage), the same way
// mapType defers to it for the non-flattening case.
func flatMapType() *typesys.Function {
	a := typesys.NewVariable("a")
	fn, strFn := typesys.NewVariable("fn"), typesys.NewVariable("fn")
	return typesys.NewPolyFn(
		typesys.Row{
			Patterns: []typesys.Type{typesys.Array(a), &typesys.FuncPattern{Arity: 1, Bind: fn}},
			Result:   &typesys.Applied{Receiver: fn, Args: []typesys.Type{a}},
		},
		typesys.Row{
			Patterns: []typesys.Type{typesys.StringT, &typesys.FuncPattern{Arity: 1, Bind: strFn}},
			Result:   &typesys.Applied{Receiver: strFn, Args: []typesys.Type{typesys.StringT}},
		},
	)
}

// foldType's result is just the accumulator's own type (fn is assumed to
// preserve it), so the callback only needs an arity check.
func foldType() *typesys.Function {
	a, b := typesys.NewVariable("a"), typesys.NewVariable("b")
	bStr := typesys.NewVariable("b")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), b, &typesys.FuncPattern{Arity: 2}}, Result: b},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, bStr, &typesys.FuncPattern{Arity: 2}}, Result: bStr},
	)
}

// fold1Type's accumulator type is forced to equal the element type; over a
// string the element type is always string.
func fold1Type() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), &typesys.FuncPattern{Arity: 2}}, Result: a},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, &typesys.FuncPattern{Arity: 2}}, Result: typesys.StringT},
	)
}

// filterType never changes an element's type, so over a string the result
// is always a string.
func filterType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), &typesys.FuncPattern{Arity: 1}}, Result: typesys.Array(a)},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, &typesys.FuncPattern{Arity: 1}}, Result: typesys.StringT},
	)
}

func indexType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), typesys.NumberT}, Result: a},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, typesys.NumberT}, Result: typesys.StringT},
	)
}

func findIndexType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), &typesys.FuncPattern{Arity: 1}}, Result: typesys.NumberT},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, &typesys.FuncPattern{Arity: 1}}, Result: typesys.NumberT},
	)
}

func lengthType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a)}, Result: typesys.NumberT},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT}, Result: typesys.NumberT},
	)
}

func containsType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), a}, Result: typesys.BoolT},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, typesys.StringT}, Result: typesys.BoolT},
	)
}

func headType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a)}, Result: a},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT}, Result: typesys.StringT},
	)
}

func tailType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a)}, Result: typesys.Array(a)},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT}, Result: typesys.StringT},
	)
}

func sortType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a)}, Result: typesys.Array(a)},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT}, Result: typesys.StringT},
	)
}

func numberArrayReduceType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.Array(typesys.NumberT)},
		Result:   typesys.NumberT,
	})
}

func sameElementReduceType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.Array(a)},
		Result:   a,
	})
}

func concatType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(
		typesys.Row{Patterns: []typesys.Type{typesys.Array(a), typesys.Array(a)}, Result: typesys.Array(a)},
		typesys.Row{Patterns: []typesys.Type{typesys.StringT, typesys.StringT}, Result: typesys.StringT},
	)
}

// Dates are typed as plain strings (ISO-8601 calendar form) and timestamps
// as plain numbers (opaque millisecond instants); the algebra has no
// dedicated Kind for either, mirroring how both serialize on the wire.

func dateSubType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.StringT, typesys.StringT},
		Result:   typesys.NumberT,
	})
}

func dateAddType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.NumberT, typesys.StringT},
		Result:   typesys.StringT,
	})
}

func dateTodayType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{Patterns: nil, Result: typesys.StringT})
}

func dateFmtType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.StringT},
		Result:   typesys.StringT,
	})
}

func dateGetType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.StringT},
		Result:   typesys.NumberT,
	})
}

func dateSetType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.StringT, typesys.NumberT},
		Result:   typesys.StringT,
	})
}

func tsNowType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{Patterns: nil, Result: typesys.NumberT})
}

func tzType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{Patterns: nil, Result: typesys.NumberT})
}

func tsFromUnixType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func tsToUnixType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func tsFromDateType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT},
		Result:   typesys.NumberT,
	})
}

func tsToDateType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT},
		Result:   typesys.StringT,
	})
}

func tsParseType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT},
		Result:   typesys.NumberT,
	})
}

func tsToStringType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT},
		Result:   typesys.StringT,
	})
}

func tsFmtType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT, typesys.StringT},
		Result:   typesys.StringT,
	})
}

func tsAddType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.NumberT, typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func tsSubType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.NumberT, typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func tsGetType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT, typesys.StringT},
		Result:   typesys.NumberT,
	})
}

func tsSetType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT, typesys.StringT, typesys.NumberT},
		Result:   typesys.NumberT,
	})
}

func currencyFmtType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.NumberT, typesys.StringT},
		Result:   typesys.StringT,
	})
}

func countryFmtType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT},
		Result:   typesys.StringT,
	})
}

func phoneFmtType() *typesys.Function {
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.StringT, typesys.StringT},
		Result:   typesys.StringT,
	})
}

func ifType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{typesys.BoolT, a, a},
		Result:   a,
	})
}

func idType() *typesys.Function {
	a := typesys.NewVariable("a")
	return typesys.NewPolyFn(typesys.Row{
		Patterns: []typesys.Type{a},
		Result:   a,
	})
}
