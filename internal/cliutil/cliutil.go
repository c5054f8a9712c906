// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so
// flags may follow the input file, preserving '-', '--' and '--x=y'.
// Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" {
			posArgs = append(posArgs, arg)
			continue
		}
		if strings.HasPrefix(arg, "-") {
			flagArgs = append(flagArgs, arg)
			if strings.Contains(arg, "=") {
				continue
			}
			name := strings.TrimLeft(arg, "-")
			if !boolFlags[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
			continue
		}
		posArgs = append(posArgs, arg)
	}
	return
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ResolveInput expands a glob in a local input path. The glob must match
// exactly one file because the scan restarts a single source per pattern.
// "-" and remote URLs are returned untouched.
func ResolveInput(arg string) (string, error) {
	if arg == "-" || strings.Contains(arg, "://") || !hasGlobMeta(arg) {
		return arg, nil
	}
	m, err := filepath.Glob(arg)
	if err != nil {
		return "", fmt.Errorf("bad glob %q: %v", arg, err)
	}
	switch len(m) {
	case 0:
		return "", fmt.Errorf("no input matched %q", arg)
	case 1:
		return m[0], nil
	default:
		return "", fmt.Errorf("%q matched %d files; give exactly one input", arg, len(m))
	}
}
