package engine

import "irepeats/internal/pattern"

// Config selects the matching mode.
type Config struct {
	// Exact applies the maximality filter; otherwise every raw match is
	// accepted.
	Exact bool
}

// Match is one raw occurrence found by the matcher.
type Match struct {
	Offset   int
	Maximal  bool
	Accepted bool
}

type Engine struct{ cfg Config }

func New(c Config) *Engine { return &Engine{cfg: c} }

// Exact reports whether the maximality filter is applied.
func (e *Engine) Exact() bool { return e.cfg.Exact }

// Scan slides the matcher over seq one offset past each hit, so overlapping
// occurrences are all reported. visit (optional) sees every raw match; the
// return value is the number of accepted ones.
func (e *Engine) Scan(seq []byte, p pattern.Pattern, visit func(Match)) int {
	accepted := 0
	for off := FindNext(seq, p, 0); off >= 0; off = FindNext(seq, p, off+1) {
		m := Match{Offset: off, Maximal: IsMaximal(seq, p, off)}
		m.Accepted = !e.cfg.Exact || m.Maximal
		if m.Accepted {
			accepted++
		}
		if visit != nil {
			visit(m)
		}
	}
	return accepted
}

// Offsets returns the accepted match offsets of p in seq.
func (e *Engine) Offsets(seq []byte, p pattern.Pattern) []int {
	var out []int
	e.Scan(seq, p, func(m Match) {
		if m.Accepted {
			out = append(out, m.Offset)
		}
	})
	return out
}
