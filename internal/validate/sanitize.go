package validate

import (
	"github.com/go-playground/validator/v10"

	"numprompt/internal/domain"
)

// rangeRule states the accepted range as validator tags. The literals must
// stay in step with domain.Min and domain.Max; struct tags cannot reference
// constants.
type rangeRule struct {
	Value int `validate:"min=1,max=10"`
}

var check = validator.New()

// SanitizeNumber narrows a parsed number into the accepted range. When ok
// is false the absent signal propagates unchanged and no range logic runs.
// Otherwise the wrapped value is accepted iff domain.Min <= value <=
// domain.Max, both ends inclusive. No side effects.
func SanitizeNumber(n domain.UnsanitizedNumber, ok bool) (domain.SanitizedNumber, bool) {
	if !ok {
		return domain.SanitizedNumber{}, false
	}
	if err := check.Struct(rangeRule{Value: n.Value}); err != nil {
		return domain.SanitizedNumber{}, false
	}
	return domain.SanitizedNumber{Value: n.Value}, true
}
