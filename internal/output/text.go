// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"irepeats/internal/pipeline"
)

// WriteTextEvent prints the text lines for one event. Record lines are only
// printed in verbose mode.
func WriteTextEvent(w io.Writer, ev pipeline.Event, verbose bool) error {
	var err error
	switch ev.Kind {
	case pipeline.PatternStarted:
		_, err = fmt.Fprintf(w, PatternHeader, ev.Pattern)
	case pipeline.RecordMatched:
		if verbose {
			_, err = fmt.Fprintf(w, RecordLine, ev.Label)
		}
	case pipeline.PatternFinished:
		_, err = fmt.Fprintf(w, TotalLine, ev.Tally.Matches)
	}
	return err
}

// StreamText writes events from a channel as they arrive.
func StreamText(w io.Writer, in <-chan pipeline.Event, o Options) error {
	for ev := range in {
		if err := WriteTextEvent(w, ev, o.Verbose); err != nil {
			return err
		}
	}
	return nil
}
