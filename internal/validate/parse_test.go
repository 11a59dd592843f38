package validate_test

import (
	"math"
	"strconv"
	"testing"

	"numprompt/internal/validate"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{"plain digit", "5", 5, true},
		{"lower bound", "1", 1, true},
		{"upper bound", "10", 10, true},
		{"out of range still parses", "11", 11, true},
		{"zero", "0", 0, true},
		{"negative", "-3", -3, true},
		{"explicit plus", "+8", 8, true},
		{"surrounding spaces", "  7  ", 7, true},
		{"leading portion only", "12abc", 12, true},
		{"letters", "abc", 0, false},
		{"digits after letters", "abc12", 0, false},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"bare sign", "-", 0, false},
		{"decimal point first", ".5", 0, false},
		{"overflow", "99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := validate.ParseNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got.Value != tt.want {
				t.Fatalf("ParseNumber(%q) = %d, want %d", tt.input, got.Value, tt.want)
			}
		})
	}
}

func TestParseNumber_RoundTripsAnyInt(t *testing.T) {
	for _, n := range []int{0, 1, 10, -1, 4096, math.MaxInt, math.MinInt} {
		got, ok := validate.ParseNumber(strconv.Itoa(n))
		if !ok {
			t.Fatalf("ParseNumber(%d) returned absent", n)
		}
		if got.Value != n {
			t.Fatalf("ParseNumber(%d) = %d", n, got.Value)
		}
	}
}
