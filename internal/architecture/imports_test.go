package architecture_test

import (
	"bufio"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// Layers, innermost first. A layer may import only layers listed before it.
var layers = []string{
	"internal/pkg/",
	"internal/platform/",
	"internal/domain/",
	"internal/data/",
	"internal/dataset/",
	"internal/report/",
	"internal/app/",
}

// Siblings that must not see each other even though neither is inside the other.
var forbiddenPairs = map[string][]string{
	"internal/dataset/": {"internal/report/"},
	"internal/report/":  {"internal/dataset/"},
}

func TestImportBoundaries(t *testing.T) {
	root, modulePath := moduleRoot(t)

	type violation struct {
		file string
		imp  string
		rule string
	}
	var violations []violation

	fset := token.NewFileSet()
	walkErr := filepath.WalkDir(filepath.Join(root, "internal"), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		disallowed := disallowedFor(rel)
		if len(disallowed) == 0 {
			return nil
		}

		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, spec := range f.Imports {
			imp, err := strconv.Unquote(spec.Path.Value)
			if err != nil || !strings.HasPrefix(imp, modulePath+"/") {
				continue
			}
			local := strings.TrimPrefix(imp, modulePath+"/") + "/"
			// Tests may reach for shared fixtures one layer down.
			if strings.HasSuffix(rel, "_test.go") && strings.HasPrefix(local, "internal/data/repos/testutil/") {
				continue
			}
			for _, bad := range disallowed {
				if strings.HasPrefix(local, bad) {
					violations = append(violations, violation{file: rel, imp: imp, rule: bad})
					break
				}
			}
		}
		return nil
	})
	if walkErr != nil {
		t.Fatalf("walk internal/: %v", walkErr)
	}

	if len(violations) > 0 {
		var b strings.Builder
		b.WriteString("import boundary violations:\n")
		for _, v := range violations {
			fmt.Fprintf(&b, "- %s imports %q (disallowed: %q)\n", v.file, v.imp, v.rule)
		}
		t.Fatal(b.String())
	}
}

func TestLayerTable(t *testing.T) {
	if got := disallowedFor("internal/platform/logger/logger.go"); len(got) != 5 {
		t.Fatalf("platform: expected 5 outer layers, got %v", got)
	}
	if got := disallowedFor("internal/app/app.go"); len(got) != 0 {
		t.Fatalf("app: expected no restrictions, got %v", got)
	}
	got := disallowedFor("internal/report/exporter.go")
	if len(got) != 2 || got[0] != "internal/app/" || got[1] != "internal/dataset/" {
		t.Fatalf("report: unexpected rules %v", got)
	}
	if got := disallowedFor("cmd/cardealer/main.go"); got != nil {
		t.Fatalf("cmd: expected no layer, got %v", got)
	}
}

func disallowedFor(rel string) []string {
	for i, layer := range layers {
		if !strings.HasPrefix(rel, layer) {
			continue
		}
		out := append([]string(nil), layers[i+1:]...)
		return append(out, forbiddenPairs[layer]...)
	}
	return nil
}

func moduleRoot(t *testing.T) (string, string) {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("go.mod not found")
		}
		dir = parent
	}
	mp, err := readModulePath(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("read module path: %v", err)
	}
	return dir, mp
}

func readModulePath(goModPath string) (string, error) {
	f, err := os.Open(goModPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if mp, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(mp), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("module path not found in %s", goModPath)
}
