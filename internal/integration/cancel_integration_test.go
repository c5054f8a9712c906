package integration

import (
	"context"
	"io"
	"testing"

	"irepeats/internal/app"
)

func TestCancelledBeforeScanExit130(t *testing.T) {
	fa := write(t, "two.fa", twoRecords)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"-n", "1", "-m", "10", fa}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
