package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Text report lines. Keep these as the single source of truth.
const (
	PatternHeader = "Testing pattern '%s':\n"
	RecordLine    = "%s matches\n"
	TotalLine     = "Total matches: %d\n"
	ProgressLine  = "Processed %d sequences\n"
)

// Options carries what every renderer needs besides the events.
type Options struct {
	Verbose bool
	Exact   bool
	RunID   string
}
