package conditions

import (
	"github.com/filemaid/filemaid/pkg/errors"
)

// comparator compares a computed scalar against a threshold
type comparator func(value, threshold float64) bool

var comparators = map[string]comparator{
	">":  func(v, t float64) bool { return v > t },
	">=": func(v, t float64) bool { return v >= t },
	"=":  func(v, t float64) bool { return v == t },
	"<=": func(v, t float64) bool { return v <= t },
	"<":  func(v, t float64) bool { return v < t },
}

// lookupComparator resolves a comparator token, failing at construction time
func lookupComparator(token string) (comparator, error) {
	compare, ok := comparators[token]
	if !ok {
		return nil, errors.Newf(errors.ErrConditionInvalid, "unknown comparator: %s", token)
	}
	return compare, nil
}
