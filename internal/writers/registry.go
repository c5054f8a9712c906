// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"irepeats/internal/output"
	"irepeats/internal/pipeline"
)

// Renderer consumes every event of a run and writes one report format.
type Renderer func(w io.Writer, in <-chan pipeline.Event, o output.Options) error

// Writer registry (format → renderer). Formats register themselves in
// init() blocks.
var renderers = map[string]Renderer{}

// Register installs fn for format (last wins).
func Register(format string, fn Renderer) { renderers[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(renderers))
	for f := range renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func lookup(format string) (Renderer, error) {
	fn, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn, nil
}

func init() {
	Register(output.FormatText, output.StreamText)
	Register(output.FormatJSON, func(w io.Writer, in <-chan pipeline.Event, o output.Options) error {
		return output.WriteJSON(w, output.CollectReports(in, o))
	})
	Register(output.FormatJSONL, streamJSONL)
}
