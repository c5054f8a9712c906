// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/profile"

	"irepeats/internal/appcore"
	"irepeats/internal/cli"
	"irepeats/internal/source"
	"irepeats/internal/version"
	"irepeats/internal/writers"
)

// GCSTokenEnv names the environment variable holding an OAuth2 bearer token
// for gs:// inputs.
const GCSTokenEnv = "IREPEATS_GCS_TOKEN"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("irepeats")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage(fs, outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return usage(fs, outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "irepeats version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	patterns, err := opts.Patterns()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	src, err := source.Open(parent, opts.Input, source.Options{GCSToken: os.Getenv(GCSTokenEnv)})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if code := appcore.CheckSource(stderr, src, len(patterns)); code != 0 {
		return code
	}

	dst := stdout
	if opts.OutputFile != "" {
		f, err := os.Create(opts.OutputFile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 3
		}
		defer func() { _ = f.Close() }()
		dst = f
	}

	if p := startProfile(opts.Profile, opts.ProfileDir); p != nil {
		defer p.Stop()
	}

	coreOpts := appcore.Options{
		Exact:           opts.Exact(),
		MaxResidues:     opts.MaxResidues,
		ProgressEvery:   opts.ProgressEvery,
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	writer := appcore.NewReportWriterFactory(opts.Format, opts.Verbose, opts.Exact(), uuid.New().String())
	return appcore.Run(parent, dst, stderr, coreOpts, src, patterns, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer, code int) int {
	fs.SetOutput(outw)
	fs.Usage()
	return flush(outw, stderr, code)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func startProfile(mode, dir string) interface{ Stop() } {
	var kind func(*profile.Profile)
	switch mode {
	case cli.ProfileCPU:
		kind = profile.CPUProfile
	case cli.ProfileMem:
		kind = profile.MemProfile
	case cli.ProfileBlock:
		kind = profile.BlockProfile
	default:
		return nil
	}
	return profile.Start(kind, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
}
