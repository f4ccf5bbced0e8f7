package stdlib

import (
	"math"
	"strings"

	"github.com/cwbudde/go-aksoscript/internal/ext"
	"github.com/cwbudde/go-aksoscript/internal/value"
)

const CategoryFormatting = "formatting"

// minorUnits gives the number of fractional digits each currency's minor
// unit carries, defaulting to 2 (cents) with named exceptions. JPY has no
// minor unit. currency_fmt passes the extension 10^digits minor units per
// major unit (100 by default, 1 for JPY).
var minorUnits = map[string]int{
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
}

func minorUnitDigits(code string) int {
	if d, ok := minorUnits[strings.ToUpper(code)]; ok {
		return d
	}
	return 2
}

func registerFormatting(r *Registry) {
	r.Register("currency_fmt", 2, CategoryFormatting, "format an amount in a given currency code", func(args []value.Value) (value.Value, error) {
		amount, aok := asNumber(args[0])
		code, cok := args[1].(value.Str)
		if !aok || !cok {
			return value.NullValue, nil
		}
		minor := int(math.Pow10(minorUnitDigits(string(code))))
		if s, ok := ext.CurrencyFormat(string(code), minor, float64(amount)); ok {
			return value.Str(s), nil
		}
		return value.NullValue, nil
	})

	r.Register("country_fmt", 1, CategoryFormatting, "resolve an ISO country code to a display name", func(args []value.Value) (value.Value, error) {
		code, ok := args[0].(value.Str)
		if !ok {
			return value.NullValue, nil
		}
		if name, ok := ext.CountryName(string(code)); ok {
			return value.Str(name), nil
		}
		return value.NullValue, nil
	})

	r.Register("phone_fmt", 2, CategoryFormatting, "format a phone number for a country code", func(args []value.Value) (value.Value, error) {
		number, nok := args[0].(value.Str)
		code, cok := args[1].(value.Str)
		if !nok || !cok {
			return value.NullValue, nil
		}
		if s, ok := ext.PhoneFormat(string(number), string(code)); ok {
			return value.Str(s), nil
		}
		return value.NullValue, nil
	})
}
