package cli

import (
	"flag"
	"fmt"
	"io"

	"irepeats/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet carrying the irepeats usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [flags] input.faa [output]\n", name)
		fmt.Fprintln(out, "\nInput / output:")
		fmt.Fprintln(out, "  input                       FASTA file (plain or gzip), '-' for STDIN, or gs://bucket/object")
		fmt.Fprintln(out, "  output                      Result file (default STDOUT)")
		fmt.Fprintf(out, "      --format string         Report format: text | json | jsonl [%s]\n", def("format"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing matched [%s]\n", def("no-match-exit-code"))
		fmt.Fprintf(out, "      --profile string        Write a cpu | mem | block profile [%s]\n", def("profile"))
		fmt.Fprintf(out, "      --profile-dir string    Profile output directory [%s]\n", def("profile-dir"))
		fmt.Fprintln(out, "      --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "\nSTDIN cannot be rewound, so it needs an explicit -s pattern.")
		fmt.Fprintln(out, "Verbose lines print the record header without its leading '>' (\"r1 matches\").")
	})
	return fs
}
