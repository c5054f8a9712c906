// internal/pipeline/stream.go
package pipeline

import (
	"context"
	"fmt"

	"irepeats/internal/fasta"
)

// RecordStream is the minimal capability the driver needs. *fasta.Stream
// satisfies it; tests may use fakes.
type RecordStream interface {
	Restart(ctx context.Context) error
	Next() (fasta.Record, error)
}

// CheckRewind fails fast when scanning n patterns would need to restart a
// source that can only be read once.
func CheckRewind(src fasta.Source, n int) error {
	if n > 1 && !src.Rewindable() {
		return fmt.Errorf("%s: %d patterns need a restartable input: %w", src.Name(), n, fasta.ErrUnseekableSource)
	}
	return nil
}
