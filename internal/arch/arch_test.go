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
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// Lower layers stay ignorant of the layers above them: the aligner
	// capability and the writer goroutines never see orchestration or
	// command wiring, and orchestration never reaches into the CLI.
	bans := map[string][]string{
		"ggscaf-core/": {
			"ggscaf/",
		},
		"ggscaf/internal/align": {
			"ggscaf/internal/app", "ggscaf/internal/cli", "ggscaf/internal/writers", "ggscaf/cmd/",
		},
		"ggscaf/internal/writers": {
			"ggscaf/internal/app", "ggscaf/internal/cli", "ggscaf/internal/align", "ggscaf/cmd/",
		},
		"ggscaf/internal/config": {
			"ggscaf/internal/app", "ggscaf/internal/cli", "ggscaf/internal/align",
			"ggscaf/internal/writers", "ggscaf/cmd/",
		},
		"ggscaf/internal/app": {
			"ggscaf/internal/cli", "ggscaf/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Standard {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) && imp != strings.TrimSuffix(prefix, "/") {
				continue
			}
			for _, dep := range p.Imports {
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
