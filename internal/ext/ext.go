// Package ext holds the process-wide extension slots that the currency,
// country, and phone-number stdlib formatters attach to at run time.
// Writes are expected to be host-serialized (e.g. during process startup,
// before any evaluation begins) and are read from inside stdlib calls,
// always on the evaluator's own goroutine.
package ext

import "sync/atomic"

// CountryNameFn maps an ISO country code to its display name, or returns
// ("", false) if unknown.
type CountryNameFn func(code string) (string, bool)

// CurrencyFormatFn renders minorUnits of the currency identified by code
// using majorNumber as the decimal value, e.g. currencyFmt("USD", 100, 19.99).
type CurrencyFormatFn func(code string, minorUnits int, majorNumber float64) string

// PhoneFormatFn formats a phone number string for the given region into
// international notation, or returns ("", false) if it cannot be parsed.
// This mirrors the shape of libphonenumber's PhoneNumberUtil.parse +
// Format(INTERNATIONAL) without requiring callers to depend on the
// concrete library type.
type PhoneFormatFn func(number, region string) (string, bool)

// slots holds the three optional formatter callables. All access goes
// through atomic.Value so a slot can be populated once, lazily, from any
// goroutine, and read without additional locking from the evaluator.
var (
	countryName   atomic.Value // CountryNameFn
	currencyFmt   atomic.Value // CurrencyFormatFn
	phoneFmt      atomic.Value // PhoneFormatFn
)

// RegisterCountryName installs the country-name lookup extension.
func RegisterCountryName(fn CountryNameFn) { countryName.Store(fn) }

// RegisterCurrencyFormat installs the currency-formatting extension.
func RegisterCurrencyFormat(fn CurrencyFormatFn) { currencyFmt.Store(fn) }

// RegisterPhoneFormat installs the phone-number-formatting extension.
func RegisterPhoneFormat(fn PhoneFormatFn) { phoneFmt.Store(fn) }

// CountryName invokes the registered extension, or reports not-found if
// none is installed, in which case the calling stdlib function returns
// null.
func CountryName(code string) (string, bool) {
	fn, _ := countryName.Load().(CountryNameFn)
	if fn == nil {
		return "", false
	}
	return fn(code)
}

// CurrencyFormat invokes the registered extension, or returns "" if none
// is installed.
func CurrencyFormat(code string, minorUnits int, majorNumber float64) (string, bool) {
	fn, _ := currencyFmt.Load().(CurrencyFormatFn)
	if fn == nil {
		return "", false
	}
	return fn(code, minorUnits, majorNumber), true
}

// PhoneFormat invokes the registered extension, or reports not-found if
// none is installed.
func PhoneFormat(number, region string) (string, bool) {
	fn, _ := phoneFmt.Load().(PhoneFormatFn)
	if fn == nil {
		return "", false
	}
	return fn(number, region)
}

// Reset clears all extension slots; used by tests to isolate extension
// state between cases.
func Reset() {
	countryName = atomic.Value{}
	currencyFmt = atomic.Value{}
	phoneFmt = atomic.Value{}
}
