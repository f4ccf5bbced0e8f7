package stdlib

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/value"
)

func TestEqualityOps(t *testing.T) {
	if got := call(t, "==", value.Number(1), value.Number(1)); got != value.Bool(true) {
		t.Errorf("==(1,1) = %v, want true", got)
	}
	if got := call(t, "!=", value.Number(1), value.Str("1")); got != value.Bool(true) {
		t.Errorf("!=(1,\"1\") = %v, want true", got)
	}
}

func TestOrderingOpsNumeric(t *testing.T) {
	if got := call(t, "<", value.Number(1), value.Number(2)); got != value.Bool(true) {
		t.Errorf("<(1,2) = %v, want true", got)
	}
	if got := call(t, ">", value.Number(1), value.Number(2)); got != value.Bool(false) {
		t.Errorf(">(1,2) = %v, want false", got)
	}
	if got := call(t, "<=", value.Number(2), value.Number(2)); got != value.Bool(true) {
		t.Errorf("<=(2,2) = %v, want true", got)
	}
	if got := call(t, ">=", value.Number(2), value.Number(2)); got != value.Bool(true) {
		t.Errorf(">=(2,2) = %v, want true", got)
	}
}

func TestOrderingOpsString(t *testing.T) {
	if got := call(t, "<", value.Str("apple"), value.Str("banana")); got != value.Bool(true) {
		t.Errorf("<(apple,banana) = %v, want true", got)
	}
}

func TestOrderingIncomparableIsFalse(t *testing.T) {
	if got := call(t, "<", value.Number(1), value.Str("x")); got != value.Bool(false) {
		t.Errorf("<(number,string) = %v, want false (not comparable)", got)
	}
}
