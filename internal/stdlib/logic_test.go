package stdlib

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/value"
)

func TestLogicOps(t *testing.T) {
	tests := []struct {
		name string
		a, b bool
		want bool
	}{
		{"and", true, true, true},
		{"and", true, false, false},
		{"or", false, true, true},
		{"or", false, false, false},
		{"xor", true, false, true},
		{"xor", true, true, false},
	}
	for _, tt := range tests {
		got := call(t, tt.name, value.Bool(tt.a), value.Bool(tt.b))
		if got != value.Bool(tt.want) {
			t.Errorf("%s(%v,%v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNot(t *testing.T) {
	if got := call(t, "not", value.Bool(true)); got != value.Bool(false) {
		t.Errorf("not(true) = %v, want false", got)
	}
}

func TestLogicNonBoolFoldsToFalse(t *testing.T) {
	if got := call(t, "and", value.Number(1), value.Bool(true)); got != value.Bool(false) {
		t.Errorf("and(number,bool) = %v, want false", got)
	}
}
