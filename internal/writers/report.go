// internal/writers/report.go
package writers

import (
	"io"

	"irepeats/internal/output"
	"irepeats/internal/pipeline"
)

// StartReportWriter spins up a writer goroutine for scan events in the given
// format. Close the returned channel when the scan ends, then read the error
// channel exactly once. An unknown format still drains the input so senders
// never block.
func StartReportWriter(out io.Writer, format string, o output.Options, bufSize int) (chan<- pipeline.Event, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Event, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := lookup(format)
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		err = fn(out, in, o)
		// Keep draining after a write failure; the producer decides when to stop.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
