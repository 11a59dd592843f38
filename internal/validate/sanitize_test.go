package validate_test

import (
	"strconv"
	"testing"

	"numprompt/internal/domain"
	"numprompt/internal/validate"
)

func TestSanitizeNumber(t *testing.T) {
	tests := []struct {
		name  string
		value int
		ok    bool
	}{
		{"lower bound inclusive", 1, true},
		{"upper bound inclusive", 10, true},
		{"middle", 5, true},
		{"just below range", 0, false},
		{"just above range", 11, false},
		{"negative", -7, false},
		{"far above", 1000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validate.SanitizeNumber(domain.UnsanitizedNumber{Value: tt.value}, true)
			if ok != tt.ok {
				t.Fatalf("SanitizeNumber(%d) ok = %v, want %v", tt.value, ok, tt.ok)
			}
			if ok && got.Value != tt.value {
				t.Fatalf("SanitizeNumber(%d) = %d, want the same value", tt.value, got.Value)
			}
		})
	}
}

func TestSanitizeNumber_AbsentShortCircuits(t *testing.T) {
	// Even an in-range payload must be ignored when the absent signal is set.
	if _, ok := validate.SanitizeNumber(domain.UnsanitizedNumber{Value: 5}, false); ok {
		t.Fatal("absent input produced a sanitized number")
	}
	if _, ok := validate.SanitizeNumber(domain.UnsanitizedNumber{}, false); ok {
		t.Fatal("absent zero input produced a sanitized number")
	}
}

func TestSanitize_IdempotentOverParse(t *testing.T) {
	for v := domain.Min; v <= domain.Max; v++ {
		first, ok := validate.SanitizeNumber(validate.ParseNumber(strconv.Itoa(v)))
		if !ok {
			t.Fatalf("value %d rejected on first pass", v)
		}
		second, ok := validate.SanitizeNumber(validate.ParseNumber(strconv.Itoa(first.Value)))
		if !ok {
			t.Fatalf("value %d rejected on second pass", v)
		}
		if second != first {
			t.Fatalf("second pass = %+v, want %+v", second, first)
		}
	}
}
