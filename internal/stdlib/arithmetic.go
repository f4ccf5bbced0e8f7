package stdlib

import (
	"math"

	"github.com/cwbudde/go-aksoscript/internal/value"
)

const CategoryArithmetic = "arithmetic"

func asNumber(v value.Value) (value.Number, bool) {
	n, ok := v.(value.Number)
	return n, ok
}

// binaryNumeric builds a Func that requires both arguments to be numbers,
// returning null for any other combination.
func binaryNumeric(op func(a, b float64) float64) Func {
	return func(args []value.Value) (value.Value, error) {
		a, aok := asNumber(args[0])
		b, bok := asNumber(args[1])
		if !aok || !bok {
			return value.NullValue, nil
		}
		return value.Number(op(float64(a), float64(b))), nil
	}
}

func registerArithmetic(r *Registry) {
	r.Register("+", 2, CategoryArithmetic, "sum of two numbers", binaryNumeric(func(a, b float64) float64 { return a + b }))
	r.Register("-", 2, CategoryArithmetic, "difference of two numbers", binaryNumeric(func(a, b float64) float64 { return a - b }))
	r.Register("*", 2, CategoryArithmetic, "product of two numbers", binaryNumeric(func(a, b float64) float64 { return a * b }))
	r.Register("/", 2, CategoryArithmetic, "quotient of two numbers, 0 on division by zero", binaryNumeric(func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		return a / b
	}))
	r.Register("^", 2, CategoryArithmetic, "a raised to the power b", binaryNumeric(math.Pow))
	r.Register("mod", 2, CategoryArithmetic, "sign-of-divisor modulo", binaryNumeric(Mod))

	r.Register("floor", 1, CategoryArithmetic, "largest integer <= x", unaryNumeric(math.Floor))
	r.Register("ceil", 1, CategoryArithmetic, "smallest integer >= x", unaryNumeric(math.Ceil))
	r.Register("round", 1, CategoryArithmetic, "nearest integer", unaryNumeric(math.Round))
	r.Register("trunc", 1, CategoryArithmetic, "integer part of x", unaryNumeric(math.Trunc))
	r.Register("sign", 1, CategoryArithmetic, "-1, 0, or 1", unaryNumeric(func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}))
	r.Register("abs", 1, CategoryArithmetic, "absolute value", unaryNumeric(math.Abs))
}

func unaryNumeric(op func(float64) float64) Func {
	return func(args []value.Value) (value.Value, error) {
		n, ok := asNumber(args[0])
		if !ok {
			return value.NullValue, nil
		}
		return value.Number(op(float64(n))), nil
	}
}

// Mod implements mod(a, b) with sign-of-divisor semantics:
// ((sign(b)*a mod |b|) + |b|) mod |b|, and mod(_, 0) = 0.
func Mod(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	absB := math.Abs(b)
	signB := 1.0
	if b < 0 {
		signB = -1.0
	}
	r := math.Mod(signB*a, absB)
	return math.Mod(r+absB, absB)
}
