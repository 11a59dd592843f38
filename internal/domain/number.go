package domain

// Min and Max bound the accepted range, inclusive on both ends.
const (
	Min = 1
	Max = 10
)

// Number is the closed union of validation results. Exactly three shapes
// implement it: InvalidNumber, UnsanitizedNumber and SanitizedNumber.
// Consumers branch over the union with a type switch; membership is checked
// at build time by the assertions below, and the unexported marker method
// keeps other packages from adding variants.
type Number interface {
	isNumber()
}

// InvalidNumber is the placeholder shape: no valid number has been
// established yet. It carries no payload.
type InvalidNumber struct{}

// UnsanitizedNumber wraps an integer parsed from text but not yet
// range-checked. The value may be any int, including negative or
// out-of-range values.
type UnsanitizedNumber struct {
	Value int
}

// SanitizedNumber wraps a fully validated integer, guaranteed to lie in
// [Min, Max].
type SanitizedNumber struct {
	Value int
}

func (InvalidNumber) isNumber()     {}
func (UnsanitizedNumber) isNumber() {}
func (SanitizedNumber) isNumber()   {}

// Compile-time assertions that exactly these shapes belong to Number.
var (
	_ Number = InvalidNumber{}
	_ Number = UnsanitizedNumber{}
	_ Number = SanitizedNumber{}
)
