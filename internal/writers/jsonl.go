// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"irepeats/internal/output"
	"irepeats/internal/pipeline"
)

// Reuse a 64 KiB buffered writer across JSONL runs to avoid per-run mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// streamJSONL writes one v1 report per line as each pattern pass finishes,
// flushing per line so long enumerations show progress downstream.
func streamJSONL(out io.Writer, in <-chan pipeline.Event, o output.Options) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	c := output.NewCollector(o)
	for ev := range in {
		r, done := c.Add(ev)
		if !done {
			continue
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return bw.Flush()
}
