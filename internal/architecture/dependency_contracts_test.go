// Where: cli/internal/architecture/dependency_contracts_test.go
// What: Contract checks for anti-pattern dependency usage across internal layers.
// Why: Views talk to collaborators through Context; only remote and cmd touch the AWS SDK.
package architecture

import (
	"go/ast"
	"go/parser"
	"go/token"
	pathpkg "path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
)

type dependencyContract struct {
	forbiddenImports      map[string]struct{}
	forbiddenCalls        map[string]map[string]struct{}
	forbiddenTypeLiterals map[string]map[string]struct{}
}

var printCalls = map[string]struct{}{
	"Print":   {},
	"Printf":  {},
	"Println": {},
}

var awsClientImports = map[string]struct{}{
	"github.com/aws/aws-sdk-go-v2/service/dynamodb": {},
	"github.com/aws/aws-sdk-go-v2/service/s3":       {},
	"github.com/aws/aws-sdk-go-v2/config":           {},
}

var dependencyContracts = map[string]dependencyContract{
	"credentials/views": {
		forbiddenImports: union(awsClientImports, map[string]struct{}{
			"github.com/charmbracelet/huh": {},
		}),
		forbiddenCalls: map[string]map[string]struct{}{
			"fmt": printCalls,
			"os":  {"Exit": {}},
			internalImportPrefix + "remote": {
				"NewStore": {},
			},
			internalImportPrefix + "infra/interaction": {
				"NewLinePrompter": {},
			},
		},
		forbiddenTypeLiterals: map[string]map[string]struct{}{
			internalImportPrefix + "infra/interaction": {
				"HuhPrompter": {},
			},
		},
	},
	"buildstatus": {
		forbiddenCalls: map[string]map[string]struct{}{
			"fmt": printCalls,
		},
	},
	"command": {
		forbiddenImports: awsClientImports,
	},
	"remote": {
		forbiddenImports: map[string]struct{}{
			"github.com/charmbracelet/huh":             {},
			internalImportPrefix + "infra/ui":          {},
			internalImportPrefix + "infra/interaction": {},
		},
		forbiddenCalls: map[string]map[string]struct{}{
			"fmt": printCalls,
		},
	},
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for _, set := range sets {
		for key := range set {
			out[key] = struct{}{}
		}
	}
	return out
}

func TestDependencyContracts(t *testing.T) {
	t.Parallel()

	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	violations := []string{}

	err := walkSources(internalRoot, func(path, rel string) error {
		sourcePkg := filepath.ToSlash(filepath.Dir(rel))
		contract, ok := dependencyContractForPackage(sourcePkg)
		if !ok {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return err
		}
		importAliases := resolveImportAliases(file)
		violations = append(violations, detectDependencyContractViolations(fset, rel, file, importAliases, contract)...)
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("dependency contract violations:\n%s", strings.Join(violations, "\n"))
	}
}

func TestDependencyContractDetectsForbiddenUsage(t *testing.T) {
	t.Parallel()

	src := `package views

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/poruru/credctl/cli/internal/infra/interaction"
)

func open() {
	fmt.Println("hi")
	_ = interaction.HuhPrompter{}
	_ = huh.NewInput()
}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "views.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	contract := dependencyContracts["credentials/views"]
	violations := detectDependencyContractViolations(fset, "views.go", file, resolveImportAliases(file), contract)
	if len(violations) != 3 {
		t.Fatalf("violations = %v, want import, call and literal", violations)
	}
}

func dependencyContractForPackage(sourcePkg string) (dependencyContract, bool) {
	pkg := strings.TrimSpace(sourcePkg)
	if pkg == "" {
		return dependencyContract{}, false
	}
	for prefix, contract := range dependencyContracts {
		if pkg == prefix || strings.HasPrefix(pkg, prefix+"/") {
			return contract, true
		}
	}
	return dependencyContract{}, false
}

func resolveImportAliases(file *ast.File) map[string]string {
	aliases := map[string]string{}
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, "\"")
		if importPath == "" {
			continue
		}
		alias := pathpkg.Base(importPath)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			alias = imp.Name.Name
		}
		aliases[alias] = importPath
	}
	return aliases
}

func detectDependencyContractViolations(
	fset *token.FileSet,
	relPath string,
	file *ast.File,
	importAliases map[string]string,
	contract dependencyContract,
) []string {
	violations := []string{}
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, "\"")
		if _, ok := contract.forbiddenImports[importPath]; !ok {
			continue
		}
		line := fset.Position(imp.Pos()).Line
		violations = append(violations, relPath+":"+strconv.Itoa(line)+" -> import "+importPath)
	}
	ast.Inspect(file, func(node ast.Node) bool {
		var (
			expr    ast.Expr
			symbols map[string]map[string]struct{}
			kind    string
		)
		switch n := node.(type) {
		case *ast.CallExpr:
			expr, symbols, kind = n.Fun, contract.forbiddenCalls, "call"
		case *ast.CompositeLit:
			expr, symbols, kind = n.Type, contract.forbiddenTypeLiterals, "literal"
		default:
			return true
		}
		importPath, symbol, ok := resolveSelector(expr, importAliases)
		if ok && isForbiddenSymbol(symbols, importPath, symbol) {
			line := fset.Position(node.Pos()).Line
			violations = append(violations, relPath+":"+strconv.Itoa(line)+" -> "+kind+" "+importPath+"."+symbol)
		}
		return true
	})
	return violations
}

func resolveSelector(expr ast.Expr, importAliases map[string]string) (importPath string, symbol string, ok bool) {
	selector, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", "", false
	}
	ident, ok := selector.X.(*ast.Ident)
	if !ok {
		return "", "", false
	}
	importPath, ok = importAliases[ident.Name]
	if !ok {
		return "", "", false
	}
	return importPath, selector.Sel.Name, true
}

func isForbiddenSymbol(forbidden map[string]map[string]struct{}, importPath, symbol string) bool {
	symbols, ok := forbidden[importPath]
	if !ok {
		return false
	}
	_, found := symbols[symbol]
	return found
}
