// Package residue holds the fixed amino-acid alphabet used to anchor
// alternating repeat patterns.
package residue

// Symbols is the alphabet in enumeration order. The order is observable: it
// decides the order in which enumerated patterns are scanned and reported.
const Symbols = "ACDEFGHIKLMNPQRSTVWY"

// Count is the number of residues in the alphabet.
const Count = len(Symbols)

var index = func() map[byte]int {
	m := make(map[byte]int, Count)
	for i := 0; i < Count; i++ {
		m[Symbols[i]] = i
	}
	return m
}()

// Index returns the alphabet position of b (uppercase only).
func Index(b byte) (int, bool) {
	i, ok := index[b]
	return i, ok
}

// Valid reports whether b is an alphabet symbol.
func Valid(b byte) bool {
	_, ok := index[b]
	return ok
}

// Upper folds an ASCII lowercase letter to uppercase and leaves every other
// byte untouched.
func Upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
