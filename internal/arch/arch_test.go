// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "irepeats/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"irepeats/internal/appcore", "irepeats/internal/app",
		"irepeats/internal/cli", "irepeats/internal/server",
		"irepeats/cmd/",
	}
	bans := map[string][]string{
		"irepeats/internal/residue": append([]string{
			"irepeats/internal/pattern", "irepeats/internal/fasta", "irepeats/internal/engine",
			"irepeats/internal/pipeline", "irepeats/internal/output", "irepeats/internal/writers",
		}, outer...),
		"irepeats/internal/pattern": append([]string{
			"irepeats/internal/fasta", "irepeats/internal/engine",
			"irepeats/internal/pipeline", "irepeats/internal/output", "irepeats/internal/writers",
		}, outer...),
		"irepeats/internal/fasta": append([]string{
			"irepeats/internal/pattern", "irepeats/internal/engine", "irepeats/internal/source",
			"irepeats/internal/pipeline", "irepeats/internal/output", "irepeats/internal/writers",
		}, outer...),
		"irepeats/internal/engine": append([]string{
			"irepeats/internal/fasta", "irepeats/internal/source",
			"irepeats/internal/pipeline", "irepeats/internal/output", "irepeats/internal/writers",
		}, outer...),
		"irepeats/internal/pipeline": append([]string{
			"irepeats/internal/source", "irepeats/internal/output", "irepeats/internal/writers",
		}, outer...),
		"irepeats/internal/output":  append([]string{"irepeats/internal/writers"}, outer...),
		"irepeats/internal/writers": outer,
		"irepeats/internal/source":  outer,
		"irepeats/pkg/api": append([]string{
			"irepeats/internal/",
		}, outer...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "irepeats/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "irepeats/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
