package appcore

import (
	"io"

	"irepeats/internal/output"
	"irepeats/internal/pipeline"
	"irepeats/internal/writers"
)

// ReportWriterFactory starts the report writer for one run.
type ReportWriterFactory struct {
	Format  string
	Verbose bool
	Exact   bool
	RunID   string
}

func NewReportWriterFactory(format string, verbose, exact bool, runID string) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Verbose: verbose, Exact: exact, RunID: runID}
}

// NeedRecords reports whether the driver must emit per-record events.
func (w ReportWriterFactory) NeedRecords() bool { return w.Verbose }

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- pipeline.Event, <-chan error) {
	return writers.StartReportWriter(out, w.Format, output.Options{
		Verbose: w.Verbose,
		Exact:   w.Exact,
		RunID:   w.RunID,
	}, bufSize)
}
