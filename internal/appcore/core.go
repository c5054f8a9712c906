// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"irepeats/internal/cmdutil"
	"irepeats/internal/fasta"
	"irepeats/internal/output"
	"irepeats/internal/pattern"
	"irepeats/internal/pipeline"
	"irepeats/internal/source"
	"irepeats/internal/writers"
)

type Options struct {
	Exact         bool
	MaxResidues   int
	ProgressEvery int

	Quiet           bool
	NoMatchExitCode int
}

type WriterFactory interface {
	NeedRecords() bool
	Start(out io.Writer, bufSize int) (chan<- pipeline.Event, <-chan error)
}

// Run scans src for every pattern and writes the report to stdout.
// Exit codes: 0 ok, 2 configuration/input, 3 runtime, 130 cancelled, and
// o.NoMatchExitCode when nothing matched.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	src fasta.Source,
	patterns []pattern.Pattern,
	wf WriterFactory,
) int {
	if code := CheckSource(stderr, src, len(patterns)); code != 0 {
		return code
	}

	outw := bufio.NewWriter(stdout)
	stream := fasta.NewStream(src, fasta.WithMaxResidues(o.MaxResidues))
	defer func() { _ = stream.Close() }()

	inCh, writeErr := wf.Start(outw, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	warnedClip := false
	total, perr := cmdutil.RunScan(
		ctx,
		pipeline.Config{
			Exact:         o.Exact,
			Verbose:       wf.NeedRecords(),
			ProgressEvery: o.ProgressEvery,
			Progress: func(_ pattern.Pattern, n int) {
				cmdutil.Progressf(stderr, o.Quiet, output.ProgressLine, n)
			},
		},
		stream,
		patterns,
		func(ev pipeline.Event) error {
			if ev.Kind == pipeline.PatternFinished && ev.Tally.RecordsClipped > 0 && !warnedClip {
				cmdutil.Warnf(stderr, o.Quiet, "%d record(s) clipped to %d residues", ev.Tally.RecordsClipped, o.MaxResidues)
				warnedClip = true
			}
			inCh <- ev
			return nil
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		return exitCode(stderr, perr)
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

// CheckSource reports, with exit code 2, a source that cannot be restarted for
// n patterns. Call it before creating any output.
func CheckSource(stderr io.Writer, src fasta.Source, n int) int {
	if err := pipeline.CheckRewind(src, n); err != nil {
		fmt.Fprintf(stderr, "error: %v (use -s to scan a single pattern)\n", err)
		return 2
	}
	return 0
}

func exitCode(stderr io.Writer, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, source.ErrNotFound),
		errors.Is(err, source.ErrAccessDenied),
		errors.Is(err, fasta.ErrUnseekableSource):
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
}
