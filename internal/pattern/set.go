package pattern

import (
	"fmt"

	"irepeats/internal/residue"
)

// Enumerate returns, for each alphabet residue in order, one pattern per
// repeat count in [min, max] ascending. The order is the report order.
func Enumerate(min, max int) ([]Pattern, error) {
	if min < 1 {
		return nil, fmt.Errorf("%w: minimum repeat %d < 1", ErrBadRange, min)
	}
	if min > max {
		return nil, fmt.Errorf("%w: minimum repeat %d > maximum %d", ErrBadRange, min, max)
	}
	if max > (MaxLength+1)/2 {
		return nil, fmt.Errorf("%w: maximum repeat %d exceeds %d", ErrPatternTooLong, max, (MaxLength+1)/2)
	}
	out := make([]Pattern, 0, residue.Count*(max-min+1))
	for i := 0; i < residue.Count; i++ {
		for n := min; n <= max; n++ {
			p, err := New(residue.Symbols[i], n)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	return out, nil
}

// Select returns the single explicit pattern when text is non-empty and the
// enumerated family otherwise.
func Select(text string, min, max int) ([]Pattern, error) {
	if text != "" {
		p, err := Parse(text)
		if err != nil {
			return nil, err
		}
		return []Pattern{p}, nil
	}
	return Enumerate(min, max)
}
