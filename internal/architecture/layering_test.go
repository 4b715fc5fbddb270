// Where: cli/internal/architecture/layering_test.go
// What: Layer dependency guard tests for CLI internal packages.
// Why: Keep domain records, infra adapters, the remote store, views and commands layered.
package architecture

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/poruru/credctl/cli/internal/"

// forbiddenLayers lists, per source layer, the layers it must not import.
// A layer is the first path element below internal/.
var forbiddenLayers = map[string][]string{
	"domain":      {"infra", "remote", "credentials", "buildstatus", "command"},
	"infra":       {"remote", "credentials", "buildstatus", "command"},
	"remote":      {"credentials", "buildstatus", "command"},
	"credentials": {"buildstatus", "command"},
	"buildstatus": {"credentials", "remote", "command"},
	"meta":        {"constants", "domain", "infra", "remote", "credentials", "buildstatus", "command"},
	"constants":   {"domain", "infra", "remote", "credentials", "buildstatus", "command"},
}

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	violations := []string{}

	err := walkSources(internalRoot, func(path, rel string) error {
		sourceLayer := topLayer(rel)
		if sourceLayer == "" {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range file.Imports {
			importPath := strings.Trim(imp.Path.Value, "\"")
			importLayer := topLayerFromImport(importPath)
			if importLayer == "" || importLayer == sourceLayer {
				continue
			}
			if violatesRule(sourceLayer, importLayer) {
				violations = append(violations, rel+" -> "+importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func TestViolatesRule(t *testing.T) {
	t.Parallel()

	cases := []struct {
		source, target string
		want           bool
	}{
		{"domain", "infra", true},
		{"infra", "domain", false},
		{"remote", "infra", false},
		{"remote", "credentials", true},
		{"credentials", "remote", false},
		{"command", "credentials", false},
		{"buildstatus", "command", true},
	}
	for _, tc := range cases {
		if got := violatesRule(tc.source, tc.target); got != tc.want {
			t.Fatalf("violatesRule(%s, %s) = %v, want %v", tc.source, tc.target, got, tc.want)
		}
	}
}

// walkSources calls fn for every non-test Go file below root.
func walkSources(root string, fn func(path, rel string) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		return fn(path, rel)
	})
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Clean(filepath.Join(wd, ".."))
}

func topLayer(relPath string) string {
	parts := strings.Split(filepath.ToSlash(relPath), "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

func topLayerFromImport(importPath string) string {
	if !strings.HasPrefix(importPath, internalImportPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(importPath, internalImportPrefix)
	return strings.TrimSpace(strings.Split(rest, "/")[0])
}

func violatesRule(sourceLayer, importLayer string) bool {
	for _, forbidden := range forbiddenLayers[sourceLayer] {
		if forbidden == importLayer {
			return true
		}
	}
	return false
}
