// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"irepeats/internal/pattern"
)

// Common holds the scan flags shared by irepeats and irepeatsd.
type Common struct {
	// Matching
	NonExact  bool
	Pattern   string
	MinRepeat int
	MaxRepeat int

	// Input
	MaxResidues int

	// Reporting
	Verbose       bool
	Quiet         bool
	ProgressEvery int
}

// Exact reports whether the maximality filter is on.
func (c Common) Exact() bool { return !c.NonExact }

// Register wires shared flags onto fs, with the single-letter aliases of the
// original tool.
func Register(fs *flag.FlagSet, c *Common) {
	// Matching
	fs.BoolVar(&c.NonExact, "non-exact", false, "accept sub-patterns of longer repeats [false]")
	fs.BoolVar(&c.NonExact, "x", false, "alias of --non-exact")
	fs.StringVar(&c.Pattern, "pattern", "", "explicit pattern, e.g. AXAXA (overrides enumeration)")
	fs.StringVar(&c.Pattern, "s", "", "alias of --pattern")
	fs.IntVar(&c.MinRepeat, "min-repeat", 1, "minimum repeat count [1]")
	fs.IntVar(&c.MinRepeat, "n", 1, "alias of --min-repeat")
	fs.IntVar(&c.MaxRepeat, "max-repeat", 10, "maximum repeat count [10]")
	fs.IntVar(&c.MaxRepeat, "m", 10, "alias of --max-repeat")

	// Input
	fs.IntVar(&c.MaxResidues, "max-residues", 0, "clip each record to N residues (0=unlimited) [0]")

	// Reporting
	fs.BoolVar(&c.Verbose, "verbose", false, "report each matching record [false]")
	fs.BoolVar(&c.Verbose, "v", false, "alias of --verbose")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress progress and warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.IntVar(&c.ProgressEvery, "progress-every", 10000, "progress line every N records (0=off) [10000]")
}

// Validate applies shared invariants used by both tools.
func Validate(c *Common) error {
	if c.Pattern != "" {
		if _, err := pattern.Parse(c.Pattern); err != nil {
			return err
		}
	} else {
		if c.MinRepeat < 1 {
			return errors.New("--min-repeat must be ≥ 1")
		}
		if c.MaxRepeat < c.MinRepeat {
			return fmt.Errorf("--max-repeat (%d) is smaller than --min-repeat (%d)", c.MaxRepeat, c.MinRepeat)
		}
		if l := 2*c.MaxRepeat - 1; l > pattern.MaxLength {
			return fmt.Errorf("--max-repeat %d gives patterns of length %d: %w", c.MaxRepeat, l, pattern.ErrPatternTooLong)
		}
	}
	if c.MaxResidues < 0 {
		return errors.New("--max-residues must be ≥ 0")
	}
	if c.ProgressEvery < 0 {
		return errors.New("--progress-every must be ≥ 0")
	}
	return nil
}

// Patterns returns the patterns selected by c, in scan order.
func (c Common) Patterns() ([]pattern.Pattern, error) {
	return pattern.Select(c.Pattern, c.MinRepeat, c.MaxRepeat)
}
