// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"irepeats/internal/clibase"
	"irepeats/internal/cliutil"
	"irepeats/internal/output"
)

// Profile modes accepted by --profile.
const (
	ProfileCPU   = "cpu"
	ProfileMem   = "mem"
	ProfileBlock = "block"
)

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	Input      string
	OutputFile string

	Format          string
	NoMatchExitCode int

	Profile    string
	ProfileDir string

	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and the input/output positionals may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)
	fs.StringVar(&opt.Format, "format", output.FormatText, "report format: text | json | jsonl [text]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when nothing matched [0]")
	fs.StringVar(&opt.Profile, "profile", "", "write a cpu | mem | block profile")
	fs.StringVar(&opt.ProfileDir, "profile-dir", ".", "profile output directory [.]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)

	// Validation
	switch len(posArgs) {
	case 0:
		return opt, errors.New("an input file is required")
	case 1, 2:
	default:
		return opt, fmt.Errorf("expected input [output], got %d arguments", len(posArgs))
	}
	in, err := cliutil.ResolveInput(posArgs[0])
	if err != nil {
		return opt, err
	}
	opt.Input = in
	if len(posArgs) == 2 {
		opt.OutputFile = posArgs[1]
	}

	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	switch opt.Format {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	switch opt.Profile {
	case "", ProfileCPU, ProfileMem, ProfileBlock:
	default:
		return opt, fmt.Errorf("invalid --profile %q", opt.Profile)
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return opt, errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return opt, nil
}
