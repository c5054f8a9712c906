package cmdutil

import (
	"context"

	"irepeats/internal/pattern"
	"irepeats/internal/pipeline"
)

// RunScan runs the driver and streams every event via send.
// It returns the grand total of accepted matches over all reported
// patterns, partial ones included, and the first error encountered.
func RunScan(
	ctx context.Context,
	cfg pipeline.Config,
	stream pipeline.RecordStream,
	patterns []pattern.Pattern,
	send func(pipeline.Event) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachPattern(ctx, cfg, stream, patterns, func(ev pipeline.Event) error {
		if ev.Kind == pipeline.PatternFinished {
			total += ev.Tally.Matches
		}
		return send(ev)
	})
	return total, err
}
