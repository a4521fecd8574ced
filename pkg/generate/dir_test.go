package generate

import (
	"os"
	"path/filepath"
	"testing"

	renderpongo2 "github.com/goliatone/go-scaffold/pkg/render/pongo2"
)

func TestRenderAndCreateDir_RendersName(t *testing.T) {
	out := t.TempDir()
	engine, err := renderpongo2.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := RenderAndCreateDir("{{project_name}}", map[string]any{"project_name": "demo"}, out, engine)
	if err != nil {
		t.Fatalf("render and create: %v", err)
	}
	if got != filepath.Join(out, "demo") {
		t.Fatalf("got %s, want %s", got, filepath.Join(out, "demo"))
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Fatalf("directory missing (err=%v)", err)
	}
}

func TestRenderAndCreateDir_IdempotentCreation(t *testing.T) {
	out := t.TempDir()
	engine, err := renderpongo2.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	data := map[string]any{"project_name": "demo"}

	first, err := RenderAndCreateDir("{{project_name}}", data, out, engine)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := RenderAndCreateDir("{{project_name}}", data, out, engine)
	if err != nil {
		t.Fatalf("second create should not error: %v", err)
	}
	if first != second {
		t.Fatalf("paths differ: %s vs %s", first, second)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one directory, got %d", len(entries))
	}
}

func TestRenderAndCreateDir_CreatesNestedPath(t *testing.T) {
	out := t.TempDir()
	engine, err := renderpongo2.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := RenderAndCreateDir("{{name}}/src/{{name}}", map[string]any{"name": "demo"}, out, engine)
	if err != nil {
		t.Fatalf("render and create: %v", err)
	}
	want := filepath.Join(out, "demo", "src", "demo")
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if info, err := os.Stat(want); err != nil || !info.IsDir() {
		t.Fatalf("nested directory missing (err=%v)", err)
	}
}
