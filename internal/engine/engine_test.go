// internal/engine/engine_test.go
package engine

import (
	"testing"

	"irepeats/internal/pattern"
)

func TestScanExactAcceptsOnlyMaximal(t *testing.T) {
	e := New(Config{Exact: true})
	if got := e.Scan([]byte("AXAXA"), mustPattern(t, "AXA"), nil); got != 0 {
		t.Fatalf("AXA in AXAXA accepted %d, want 0", got)
	}
	if got := e.Offsets([]byte("AXAXA"), mustPattern(t, "AXAXA")); !equalInts(got, []int{0}) {
		t.Fatalf("AXAXA offsets = %v", got)
	}
	if got := e.Scan([]byte("AAAA"), mustPattern(t, "AXA"), nil); got != 0 {
		t.Fatalf("AAAA accepted %d", got)
	}
}

func TestScanNonExactEqualsRaw(t *testing.T) {
	seqs := []string{"AXAXA", "GAGAGAGAG", "AAAA", "KLKLKMKAKAK", ""}
	e := New(Config{Exact: false})
	for _, s := range seqs {
		for _, txt := range []string{"AXA", "GXGXG", "KXK", "A"} {
			p := mustPattern(t, txt)
			raw := rawOffsets(s, p)
			if got := e.Scan([]byte(s), p, nil); got != len(raw) {
				t.Errorf("%s in %q: accepted %d, raw %d", txt, s, got, len(raw))
			}
		}
	}
}

func TestScanVisitSeesRejected(t *testing.T) {
	e := New(Config{Exact: true})
	var seen []Match
	n := e.Scan([]byte("AXAXA"), mustPattern(t, "AXA"), func(m Match) { seen = append(seen, m) })
	if n != 0 || len(seen) != 2 {
		t.Fatalf("accepted=%d seen=%v", n, seen)
	}
	for _, m := range seen {
		if m.Maximal || m.Accepted {
			t.Fatalf("unexpected accepted match %+v", m)
		}
	}
}

func TestScanOverlapping(t *testing.T) {
	// GAGAGAGAG holds GXGXG at 0, 2 and 4; all three are raw hits and none
	// is maximal inside the longer run.
	p, _ := pattern.New('G', 3)
	raw := New(Config{}).Offsets([]byte("GAGAGAGAG"), p)
	if !equalInts(raw, []int{0, 2, 4}) {
		t.Fatalf("raw offsets = %v", raw)
	}
	if got := New(Config{Exact: true}).Offsets([]byte("GAGAGAGAG"), p); len(got) != 0 {
		t.Fatalf("exact offsets = %v", got)
	}
}
