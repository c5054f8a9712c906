// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"irepeats/internal/pattern"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "in.faa")
	if !o.Exact() || o.Verbose || o.Quiet || o.MinRepeat != 1 || o.MaxRepeat != 10 || o.Pattern != "" {
		t.Errorf("bad defaults %+v", o)
	}
	if o.Input != "in.faa" || o.OutputFile != "" || o.Format != "text" || o.ProgressEvery != 10000 {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestShortFlagsAndOutput(t *testing.T) {
	o := mustParse(t, "-x", "-v", "-q", "-n", "2", "-m", "4", "in.faa", "out.txt")
	if o.Exact() || !o.Verbose || !o.Quiet || o.MinRepeat != 2 || o.MaxRepeat != 4 {
		t.Errorf("short flags not applied: %+v", o)
	}
	if o.OutputFile != "out.txt" {
		t.Errorf("output = %q", o.OutputFile)
	}
}

func TestFlagsAfterInput(t *testing.T) {
	o := mustParse(t, "in.faa", "-s", "axaxa", "--format", "jsonl")
	if o.Pattern != "axaxa" || o.Format != "jsonl" || o.Input != "in.faa" {
		t.Errorf("interleaved parse %+v", o)
	}
}

func TestErrorNoInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-v"}); err == nil {
		t.Fatalf("expected error when input missing")
	}
}

func TestErrorTooManyPositionals(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"a", "b", "c"}); err == nil {
		t.Fatalf("expected error for three positionals")
	}
}

func TestErrorBadRange(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-n", "5", "-m", "3", "in.faa"}); err == nil {
		t.Fatalf("expected error for min > max")
	}
	if _, err := ParseArgs(newFS(), []string{"-n", "0", "in.faa"}); err == nil {
		t.Fatalf("expected error for min 0")
	}
	_, err := ParseArgs(newFS(), []string{"-m", "400", "in.faa"})
	if !errors.Is(err, pattern.ErrPatternTooLong) {
		t.Fatalf("want ErrPatternTooLong, got %v", err)
	}
}

func TestErrorMalformedPattern(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-s", "AXB", "in.faa"})
	if !errors.Is(err, pattern.ErrMalformedPattern) {
		t.Fatalf("want ErrMalformedPattern, got %v", err)
	}
}

func TestErrorBadFormatAndProfile(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--format", "fasta", "in.faa"}); err == nil {
		t.Fatalf("expected format error")
	}
	if _, err := ParseArgs(newFS(), []string{"--profile", "gpu", "in.faa"}); err == nil {
		t.Fatalf("expected profile error")
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if o := mustParse(t, "--version"); !o.Version {
		t.Fatalf("version flag not set")
	}
}

func TestUsageNotesLabelFormat(t *testing.T) {
	fs := NewFlagSet("irepeats")
	_, _ = ParseArgs(fs, []string{"-h"})
	var b bytes.Buffer
	fs.SetOutput(&b)
	fs.Usage()
	if !strings.Contains(b.String(), "without its leading '>'") {
		t.Fatalf("usage does not describe verbose labels:\n%s", b.String())
	}
}
