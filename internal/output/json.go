// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"irepeats/internal/pipeline"
	"irepeats/pkg/api"
)

// Collector folds scan events into v1 pattern reports.
type Collector struct {
	o   Options
	cur []api.RecordMatchV1
}

func NewCollector(o Options) *Collector { return &Collector{o: o} }

// Add consumes one event and returns the finished report when ev closes a
// pattern pass.
func (c *Collector) Add(ev pipeline.Event) (api.PatternReportV1, bool) {
	switch ev.Kind {
	case pipeline.PatternStarted:
		c.cur = nil
	case pipeline.RecordMatched:
		c.cur = append(c.cur, api.RecordMatchV1{
			Index:   ev.RecordIndex,
			ID:      ev.RecordID,
			Label:   ev.Label,
			Offsets: append([]int(nil), ev.Offsets...),
		})
	case pipeline.PatternFinished:
		r := ToAPIReport(ev.Tally, c.o)
		r.Records = c.cur
		c.cur = nil
		return r, true
	}
	return api.PatternReportV1{}, false
}

// ToAPIReport converts a tally to the stable wire schema (v1).
func ToAPIReport(t pipeline.Tally, o Options) api.PatternReportV1 {
	return api.PatternReportV1{
		RunID:          o.RunID,
		Pattern:        t.Pattern.String(),
		Residue:        string(t.Pattern.Anchor()),
		Repeats:        t.Pattern.Repeats(),
		Length:         t.Pattern.Len(),
		Exact:          o.Exact,
		RecordsScanned: t.RecordsScanned,
		RecordsMatched: t.RecordsMatched,
		TotalMatches:   t.Matches,
		Partial:        t.Partial,
	}
}

// CollectReports drains in and returns every finished report in order.
func CollectReports(in <-chan pipeline.Event, o Options) []api.PatternReportV1 {
	c := NewCollector(o)
	out := make([]api.PatternReportV1, 0, 16)
	for ev := range in {
		if r, ok := c.Add(ev); ok {
			out = append(out, r)
		}
	}
	return out
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, reports []api.PatternReportV1) error {
	if reports == nil {
		reports = []api.PatternReportV1{}
	}
	return EncodePretty(w, reports)
}
