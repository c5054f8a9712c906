// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"irepeats/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (synopsis, I/O, service flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – alternating repeat (AXAXA…) finder\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMatching:")
		fmt.Fprintf(out, "  -x, --non-exact             Accept sub-patterns of longer repeats [%s]\n", def("non-exact"))
		fmt.Fprintln(out, "  -s, --pattern string        Explicit pattern (e.g. AXAXA); overrides enumeration")
		fmt.Fprintf(out, "  -n, --min-repeat int        Minimum repeat count [%s]\n", def("min-repeat"))
		fmt.Fprintf(out, "  -m, --max-repeat int        Maximum repeat count [%s]\n", def("max-repeat"))
		fmt.Fprintf(out, "      --max-residues int      Clip each record to N residues (0=unlimited) [%s]\n", def("max-residues"))

		fmt.Fprintln(out, "\nReporting:")
		fmt.Fprintf(out, "  -v, --verbose               Report each matching record [%s]\n", def("verbose"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress progress and warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --progress-every int    Progress line every N records (0=off) [%s]\n", def("progress-every"))

		fmt.Fprintln(out, "\nWithout -s, every residue of ACDEFGHIKLMNPQRSTVWY is tried for each repeat")
		fmt.Fprintln(out, "count in [min, max]. Exact matching rejects a hit that the neighbouring")
		fmt.Fprintln(out, "residues would extend: looking for 'AXA', the string 'AXAXA' does not match.")
	}
}
