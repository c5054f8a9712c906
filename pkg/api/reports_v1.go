// pkg/api/reports_v1.go
package api

// PatternReportV1 is the stable JSON/JSONL schema for one pattern's scan.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PatternReportV1 struct {
	RunID          string          `json:"run_id,omitempty"`
	Pattern        string          `json:"pattern"`
	Residue        string          `json:"residue"`
	Repeats        int             `json:"repeats"`
	Length         int             `json:"length"`
	Exact          bool            `json:"exact"`
	RecordsScanned int             `json:"records_scanned"`
	RecordsMatched int             `json:"records_matched"`
	TotalMatches   int             `json:"total_matches"`
	Partial        bool            `json:"partial,omitempty"`
	Records        []RecordMatchV1 `json:"records,omitempty"` // verbose only
}

// RecordMatchV1 names one record with at least one accepted match.
type RecordMatchV1 struct {
	Index   int    `json:"index"`
	ID      string `json:"id"`
	Label   string `json:"label"`
	Offsets []int  `json:"offsets"`
}

// ScanResponseV1 is the body returned by the scan service. A scan that fails
// after reporting at least one pattern keeps its reports, the last of them
// marked partial, and sets Error.
type ScanResponseV1 struct {
	RunID    string            `json:"run_id"`
	Source   string            `json:"source"`
	Exact    bool              `json:"exact"`
	Patterns []PatternReportV1 `json:"patterns"`
	Error    *ErrorV1          `json:"error,omitempty"`
}

// ErrorV1 is the body of every non-2xx service response.
type ErrorV1 struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// PatternListV1 is the body of GET /v1/patterns.
type PatternListV1 struct {
	Patterns []string `json:"patterns"`
}
