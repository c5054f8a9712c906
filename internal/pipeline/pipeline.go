// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"

	"irepeats/internal/engine"
	"irepeats/internal/pattern"
)

// Config controls a scan.
type Config struct {
	Exact         bool // apply the maximality filter
	Verbose       bool // emit RecordMatched events
	ProgressEvery int  // call Progress every N records of a pass; 0 disables
	Progress      func(p pattern.Pattern, records int)
}

// EventKind tells which field set of an Event is meaningful.
type EventKind int

const (
	PatternStarted EventKind = iota
	RecordMatched
	PatternFinished
)

// Event is one step of a scan, delivered in scan order.
type Event struct {
	Kind    EventKind
	Pattern pattern.Pattern

	// RecordMatched
	RecordIndex int
	RecordID    string
	Label       string
	Offsets     []int

	// PatternFinished
	Tally Tally
}

// Tally accumulates one pattern's pass. Partial is set when the pass was cut
// short by a read error.
type Tally struct {
	Pattern        pattern.Pattern
	Matches        int
	RecordsMatched int
	RecordsScanned int
	RecordsClipped int
	Partial        bool
}

// ForEachPattern scans every record of stream once per pattern, in order,
// and calls visit for each event. Cancellation is honoured between patterns
// only; a pass in progress always runs to completion. When a read fails
// mid-pass the partial tally is still delivered before the error is
// returned.
func ForEachPattern(
	ctx context.Context,
	cfg Config,
	stream RecordStream,
	patterns []pattern.Pattern,
	visit func(Event) error,
) error {
	eng := engine.New(engine.Config{Exact: cfg.Exact})
	for _, p := range patterns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := scanPattern(ctx, cfg, eng, stream, p, visit); err != nil {
			return err
		}
	}
	return nil
}

func scanPattern(
	ctx context.Context,
	cfg Config,
	eng *engine.Engine,
	stream RecordStream,
	p pattern.Pattern,
	visit func(Event) error,
) error {
	if err := stream.Restart(ctx); err != nil {
		return err
	}
	if err := visit(Event{Kind: PatternStarted, Pattern: p}); err != nil {
		return err
	}

	t := Tally{Pattern: p}
	var offsets []int
	for {
		rec, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Partial = true
			if verr := visit(Event{Kind: PatternFinished, Pattern: p, Tally: t}); verr != nil {
				return errors.Join(err, verr)
			}
			return err
		}

		t.RecordsScanned++
		if rec.Clipped {
			t.RecordsClipped++
		}
		if cfg.Progress != nil && cfg.ProgressEvery > 0 && t.RecordsScanned%cfg.ProgressEvery == 0 {
			cfg.Progress(p, t.RecordsScanned)
		}

		offsets = offsets[:0]
		n := eng.Scan(rec.Seq, p, func(m engine.Match) {
			if cfg.Verbose && m.Accepted {
				offsets = append(offsets, m.Offset)
			}
		})
		if n == 0 {
			continue
		}
		t.Matches += n
		t.RecordsMatched++
		if cfg.Verbose {
			ev := Event{
				Kind:        RecordMatched,
				Pattern:     p,
				RecordIndex: rec.Index,
				RecordID:    rec.ID,
				Label:       rec.Label,
				Offsets:     append([]int(nil), offsets...),
			}
			if err := visit(ev); err != nil {
				return err
			}
		}
	}
	return visit(Event{Kind: PatternFinished, Pattern: p, Tally: t})
}
