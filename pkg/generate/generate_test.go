package generate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scaffold/pkg/hooks"
	"github.com/goliatone/go-scaffold/pkg/vars"
)

// buildRepo lays out a template repository with one templated directory
// containing a text file, a binary file, and a nested docs directory.
func buildRepo(t *testing.T) string {
	t.Helper()
	repo := t.TempDir()
	tmpl := filepath.Join(repo, "{{project_name}}")
	mkdirAll(t, filepath.Join(tmpl, "docs"))

	write := func(path string, content []byte) {
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	write(filepath.Join(tmpl, "README.md"), []byte("# {{project_name}}\n"))
	write(filepath.Join(tmpl, "logo.png"), pngBytes)
	write(filepath.Join(tmpl, "docs", "{{project_name}}.md"), []byte("docs for {{project_name}}\n"))
	return repo
}

func writeHookScript(t *testing.T, repo, name, body string) {
	t.Helper()
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(filepath.Join(repo, name), []byte(script), 0o755); err != nil {
		t.Fatalf("write hook %s: %v", name, err)
	}
}

func demoContext() *vars.Context {
	return vars.FromPairs([]vars.Pair{{Key: "project_name", Value: "demo"}})
}

func TestGenerate_EndToEnd(t *testing.T) {
	repo := buildRepo(t)
	out := t.TempDir()

	// The pre hook records how many entries the project dir holds when it
	// runs; the post hook records whether the generated files exist.
	writeHookScript(t, repo, hooks.PreGenProject,
		`ls -A "$1" | wc -l | tr -d ' \n' > pre_entries.txt`+"\n")
	writeHookScript(t, repo, hooks.PostGenProject,
		`test -f "$1/README.md" && test -f "$1/logo.png" && printf yes > post_ok.txt`+"\n")

	projectDir, err := Generate(repo, demoContext(), out)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !filepath.IsAbs(projectDir) {
		t.Fatalf("project dir should be absolute, got %s", projectDir)
	}
	if projectDir != filepath.Join(out, "demo") {
		t.Fatalf("project dir %s, want %s", projectDir, filepath.Join(out, "demo"))
	}

	readme, err := os.ReadFile(filepath.Join(projectDir, "README.md"))
	if err != nil {
		t.Fatalf("read README: %v", err)
	}
	if string(readme) != "# demo\n" {
		t.Fatalf("README not rendered: %q", readme)
	}

	logo, err := os.ReadFile(filepath.Join(projectDir, "logo.png"))
	if err != nil {
		t.Fatalf("read logo: %v", err)
	}
	if string(logo) != string(pngBytes) {
		t.Fatalf("binary file not byte-identical to source")
	}

	docs, err := os.ReadFile(filepath.Join(projectDir, "docs", "demo.md"))
	if err != nil {
		t.Fatalf("read docs: %v", err)
	}
	if string(docs) != "docs for demo\n" {
		t.Fatalf("nested file not rendered: %q", docs)
	}

	preEntries, err := os.ReadFile(filepath.Join(repo, "pre_entries.txt"))
	if err != nil {
		t.Fatalf("pre hook did not run: %v", err)
	}
	if string(preEntries) != "0" {
		t.Fatalf("pre hook should see an empty project dir, saw %s entries", preEntries)
	}

	postOK, err := os.ReadFile(filepath.Join(repo, "post_ok.txt"))
	if err != nil {
		t.Fatalf("post hook did not run: %v", err)
	}
	if string(postOK) != "yes" {
		t.Fatalf("post hook should see generated files")
	}
}

func TestGenerate_UntemplatedRootRejected(t *testing.T) {
	repo := t.TempDir()
	mkdirAll(t, filepath.Join(repo, "plainname"))
	out := t.TempDir()

	_, err := Generate(repo, demoContext(), out)

	var nonTemplated *NonTemplatedDirError
	if !errors.As(err, &nonTemplated) {
		t.Fatalf("expected *NonTemplatedDirError, got %T: %v", err, err)
	}

	entries, readErr := os.ReadDir(out)
	if readErr != nil {
		t.Fatalf("read output dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("no output should be created, found %d entries", len(entries))
	}
}

func TestGenerate_PreHookFailureAborts(t *testing.T) {
	repo := buildRepo(t)
	out := t.TempDir()
	writeHookScript(t, repo, hooks.PreGenProject, "exit 1\n")

	_, err := Generate(repo, demoContext(), out)

	var execErr *hooks.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *hooks.ExecutionError, got %T: %v", err, err)
	}
	if execErr.Hook != hooks.PreGenProject {
		t.Fatalf("wrong hook in error: %s", execErr.Hook)
	}

	// The project root is created before the pre hook runs, so it exists
	// but holds nothing.
	projectDir := filepath.Join(out, "demo")
	entries, readErr := os.ReadDir(projectDir)
	if readErr != nil {
		t.Fatalf("project root should exist: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("no files should be materialized, found %d", len(entries))
	}
}

func TestGenerate_PostHookFailureKeepsOutput(t *testing.T) {
	repo := buildRepo(t)
	out := t.TempDir()
	writeHookScript(t, repo, hooks.PostGenProject, "exit 2\n")

	_, err := Generate(repo, demoContext(), out)

	var execErr *hooks.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *hooks.ExecutionError, got %T: %v", err, err)
	}

	// No rollback: everything written before the post hook stays.
	if _, statErr := os.Stat(filepath.Join(out, "demo", "README.md")); statErr != nil {
		t.Fatalf("generated files should remain after post hook failure: %v", statErr)
	}
}

func TestGenerate_HookOrder(t *testing.T) {
	repo := buildRepo(t)
	out := t.TempDir()

	var calls []string
	gen := New(WithHookRunner(func(hookName, projectDir string) error {
		if !filepath.IsAbs(projectDir) {
			t.Fatalf("hook received relative project dir: %s", projectDir)
		}
		calls = append(calls, hookName)
		return nil
	}))

	if _, err := gen.Generate(repo, demoContext(), out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{hooks.PreGenProject, hooks.PostGenProject}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_TemplatedNestedDirectories(t *testing.T) {
	repo := t.TempDir()
	tmpl := filepath.Join(repo, "{{project_name}}")
	mkdirAll(t, filepath.Join(tmpl, "src", "{{project_name}}"))
	if err := os.WriteFile(filepath.Join(tmpl, "src", "{{project_name}}", "main.py"), []byte("print(\"{{project_name}}\")\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := t.TempDir()

	projectDir, err := Generate(repo, demoContext(), out)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(projectDir, "src", "demo", "main.py"))
	if err != nil {
		t.Fatalf("nested templated directory not rendered: %v", err)
	}
	if string(got) != "print(\"demo\")\n" {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestGenerate_RestoresWorkingDirectory(t *testing.T) {
	repo := buildRepo(t)
	out := t.TempDir()

	before, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	if _, err := Generate(repo, demoContext(), out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	after, _ := os.Getwd()
	if after != before {
		t.Fatalf("working directory leaked: got %s, want %s", after, before)
	}
}

func TestGenerate_DefaultOutputDirIsCwd(t *testing.T) {
	repo := buildRepo(t)
	workDir := t.TempDir()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})

	projectDir, err := Generate(repo, demoContext(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(projectDir, "README.md")); err != nil {
		t.Fatalf("project not generated under cwd: %v", err)
	}
}
