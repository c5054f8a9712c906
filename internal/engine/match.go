package engine

import (
	"bytes"

	"irepeats/internal/pattern"
)

// FindNext returns the smallest offset >= from at which p occurs in seq, or
// -1 when no full window fits. An occurrence has the anchor at every even
// position of the window and anything but the anchor at every odd one, so a
// plain run of anchors never matches a pattern with more than one repeat.
func FindNext(seq []byte, p pattern.Pattern, from int) int {
	if from < 0 {
		from = 0
	}
	a := p.Anchor()
	pl := p.Len()
	last := len(seq) - pl

window:
	for off := from; off <= last; off++ {
		// Jump to the next anchor; the window must start on one.
		if seq[off] != a {
			j := bytes.IndexByte(seq[off:last+1], a)
			if j < 0 {
				return -1
			}
			off += j
		}
		for k := 2; k < pl; k += 2 {
			if seq[off+k] != a {
				continue window
			}
		}
		for k := 1; k < pl; k += 2 {
			if seq[off+k] == a {
				continue window
			}
		}
		return off
	}
	return -1
}

// IsMaximal reports whether the match of p at offset cannot be extended by
// one more wildcard/anchor unit on either side. With two or more residues of
// context a side rejects on "non-anchor then anchor"; with exactly one it
// rejects on an anchor. Missing context never rejects.
func IsMaximal(seq []byte, p pattern.Pattern, offset int) bool {
	a := p.Anchor()

	switch {
	case offset >= 2:
		if seq[offset-1] != a && seq[offset-2] == a {
			return false
		}
	case offset == 1:
		if seq[0] == a {
			return false
		}
	}

	end := offset + p.Len()
	switch after := len(seq) - end; {
	case after >= 2:
		if seq[end] != a && seq[end+1] == a {
			return false
		}
	case after == 1:
		if seq[end] == a {
			return false
		}
	}
	return true
}
