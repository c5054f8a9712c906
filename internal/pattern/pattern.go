// Package pattern builds the alternating repeat patterns (AXAXA...) scanned
// by the engine, either from an explicit pattern string or by enumerating
// every residue over a range of repeat counts.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"irepeats/internal/residue"
)

// MaxLength is the longest pattern accepted, in residues.
const MaxLength = 359

// Wildcard is the symbol used when rendering wildcard positions.
const Wildcard = 'X'

var (
	ErrMalformedPattern = errors.New("malformed pattern")
	ErrPatternTooLong   = errors.New("pattern too long")
	ErrBadRange         = errors.New("bad repeat range")
)

// Pattern is an anchor residue repeated n times with a single wildcard
// position between consecutive anchors. The zero value is not usable.
type Pattern struct {
	anchor  byte
	repeats int
}

// New returns the pattern with the given anchor and repeat count.
func New(anchor byte, repeats int) (Pattern, error) {
	anchor = residue.Upper(anchor)
	if !residue.Valid(anchor) {
		return Pattern{}, fmt.Errorf("%w: anchor %q is not a residue", ErrMalformedPattern, anchor)
	}
	if repeats < 1 {
		return Pattern{}, fmt.Errorf("%w: repeat count %d < 1", ErrMalformedPattern, repeats)
	}
	if l := 2*repeats - 1; l > MaxLength {
		return Pattern{}, fmt.Errorf("%w: length %d exceeds %d", ErrPatternTooLong, l, MaxLength)
	}
	return Pattern{anchor: anchor, repeats: repeats}, nil
}

// Parse validates an explicit pattern such as "AXAXA". Anchor positions must
// all carry the same residue; wildcard positions may hold anything except the
// anchor. Case is ignored.
func Parse(text string) (Pattern, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	switch {
	case s == "":
		return Pattern{}, fmt.Errorf("%w: empty pattern", ErrMalformedPattern)
	case len(s) > MaxLength:
		return Pattern{}, fmt.Errorf("%w: %w: length %d exceeds %d", ErrMalformedPattern, ErrPatternTooLong, len(s), MaxLength)
	case len(s)%2 == 0:
		return Pattern{}, fmt.Errorf("%w: %q has even length", ErrMalformedPattern, text)
	}
	a := s[0]
	for i := 0; i < len(s); i++ {
		if i%2 == 0 && s[i] != a {
			return Pattern{}, fmt.Errorf("%w: %q: position %d is %q, want anchor %q", ErrMalformedPattern, text, i, s[i], a)
		}
		if i%2 == 1 && s[i] == a {
			return Pattern{}, fmt.Errorf("%w: %q: wildcard position %d equals the anchor", ErrMalformedPattern, text, i)
		}
	}
	return New(a, (len(s)+1)/2)
}

// Anchor returns the anchor residue.
func (p Pattern) Anchor() byte { return p.anchor }

// Repeats returns the number of anchor positions.
func (p Pattern) Repeats() int { return p.repeats }

// Len returns the total pattern length, 2n-1.
func (p Pattern) Len() int { return 2*p.repeats - 1 }

// String renders the pattern with X at wildcard positions.
func (p Pattern) String() string {
	b := make([]byte, p.Len())
	for i := range b {
		if i%2 == 0 {
			b[i] = p.anchor
		} else {
			b[i] = Wildcard
		}
	}
	return string(b)
}
