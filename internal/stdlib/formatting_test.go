package stdlib

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/ext"
	"github.com/cwbudde/go-aksoscript/internal/value"
)

func TestCurrencyFmtUnregisteredIsNull(t *testing.T) {
	ext.Reset()
	got := call(t, "currency_fmt", value.Number(19.99), value.Str("USD"))
	if got != value.NullValue {
		t.Errorf("currency_fmt with no registered extension = %v, want null", got)
	}
}

func TestCurrencyFmtRegistered(t *testing.T) {
	ext.Reset()
	t.Cleanup(ext.Reset)
	var gotCode string
	var gotMinor int
	ext.RegisterCurrencyFormat(func(code string, minorUnits int, majorNumber float64) string {
		gotCode = code
		gotMinor = minorUnits
		return "$19.99"
	})
	got := call(t, "currency_fmt", value.Number(19.99), value.Str("USD"))
	if got != value.Str("$19.99") {
		t.Errorf("currency_fmt = %v, want $19.99", got)
	}
	if gotCode != "USD" || gotMinor != 100 {
		t.Errorf("currency_fmt passed (%q,%d), want (USD,100)", gotCode, gotMinor)
	}
}

func TestCurrencyFmtUsesMinorUnitExceptions(t *testing.T) {
	ext.Reset()
	t.Cleanup(ext.Reset)
	var gotMinor int
	ext.RegisterCurrencyFormat(func(code string, minorUnits int, majorNumber float64) string {
		gotMinor = minorUnits
		return ""
	})
	call(t, "currency_fmt", value.Number(1000), value.Str("JPY"))
	if gotMinor != 1 {
		t.Errorf("currency_fmt(JPY) minorUnits = %d, want 1", gotMinor)
	}
	call(t, "currency_fmt", value.Number(1), value.Str("bhd"))
	if gotMinor != 1000 {
		t.Errorf("currency_fmt(bhd) minorUnits = %d, want 1000 (case-insensitive lookup)", gotMinor)
	}
}

func TestCountryFmtUnregisteredIsNull(t *testing.T) {
	ext.Reset()
	got := call(t, "country_fmt", value.Str("US"))
	if got != value.NullValue {
		t.Errorf("country_fmt with no registered extension = %v, want null", got)
	}
}

func TestCountryFmtRegistered(t *testing.T) {
	ext.Reset()
	t.Cleanup(ext.Reset)
	ext.RegisterCountryName(func(code string) (string, bool) {
		if code == "US" {
			return "United States", true
		}
		return "", false
	})
	if got := call(t, "country_fmt", value.Str("US")); got != value.Str("United States") {
		t.Errorf("country_fmt(US) = %v, want United States", got)
	}
	if got := call(t, "country_fmt", value.Str("ZZ")); got != value.NullValue {
		t.Errorf("country_fmt(ZZ) = %v, want null", got)
	}
}

func TestPhoneFmtUnregisteredIsNull(t *testing.T) {
	ext.Reset()
	got := call(t, "phone_fmt", value.Str("5551234"), value.Str("US"))
	if got != value.NullValue {
		t.Errorf("phone_fmt with no registered extension = %v, want null", got)
	}
}

func TestPhoneFmtRegistered(t *testing.T) {
	ext.Reset()
	t.Cleanup(ext.Reset)
	ext.RegisterPhoneFormat(func(number, region string) (string, bool) {
		return "+1 " + number, true
	})
	got := call(t, "phone_fmt", value.Str("5551234"), value.Str("US"))
	if got != value.Str("+1 5551234") {
		t.Errorf("phone_fmt = %v, want +1 5551234", got)
	}
}
