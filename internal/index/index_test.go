// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mgirard/recipe-indexer/pkg/types"
)

// writeDoc creates one document in dir.
func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func goodDoc(title string) string {
	return "---\ntitle: " + title + "\ncategories: [plat]\nservings: 2\n---\n\n## Ingrédients\n- sel\n"
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.qmd", "x")
	writeDoc(t, dir, "a.qmd", "x")
	writeDoc(t, dir, "_template.qmd", "x")
	writeDoc(t, dir, "notes.txt", "x")
	if err := os.Mkdir(filepath.Join(dir, "sub.qmd"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := types.IndexConfig{InputDir: dir}.WithDefaults()
	paths, err := Discover(cfg)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	want := []string{filepath.Join(dir, "a.qmd"), filepath.Join(dir, "b.qmd")}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	cfg := types.IndexConfig{InputDir: filepath.Join(t.TempDir(), "absent")}.WithDefaults()

	_, err := Discover(cfg)
	if err == nil {
		t.Fatal("expected error for missing input directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error %q should report the missing directory", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "tarte.qmd", goodDoc("Tarte"))
	writeDoc(t, dir, "brouillon.qmd", "# Pas de header\n")
	writeDoc(t, dir, "casse.qmd", "---\ntitle: Cassé\nservings: beaucoup\n---\n")
	writeDoc(t, dir, "_template.qmd", goodDoc("Template"))

	cfg := types.IndexConfig{InputDir: dir}
	var log bytes.Buffer

	recipes, outcomes, summary, err := Run(cfg, &log)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if summary.Indexed != 1 || summary.Skipped != 1 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 1/1/1", summary)
	}
	if summary.Total() != 3 {
		t.Errorf("total = %d, want 3", summary.Total())
	}
	if !summary.HasFailures() {
		t.Error("HasFailures should be true")
	}

	if len(recipes) != 1 || recipes[0].ID != "tarte" {
		t.Fatalf("recipes = %+v, want single tarte record", recipes)
	}
	if len(outcomes) != 3 {
		t.Fatalf("outcomes = %+v, want 3 entries", outcomes)
	}

	output := log.String()
	for _, want := range []string{
		"Found 3 document(s)",
		"WARNING: no header block in brouillon.qmd",
		"ERROR: casse.qmd:",
		"OK: Tarte - 1 ingredient(s)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "_template.qmd") {
		t.Error("template file should not be processed")
	}
}

func TestRun_Ordering(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.qmd", goodDoc("B"))
	writeDoc(t, dir, "a.qmd", goodDoc("A"))

	var log bytes.Buffer
	recipes, _, _, err := Run(types.IndexConfig{InputDir: dir}, &log)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(recipes) != 2 || recipes[0].ID != "a" || recipes[1].ID != "b" {
		t.Errorf("recipes out of order: %+v", recipes)
	}
}

func TestRun_FailureIsolation(t *testing.T) {
	// A failing document in the middle must not affect its neighbours.
	dir := t.TempDir()
	writeDoc(t, dir, "a.qmd", goodDoc("A"))
	writeDoc(t, dir, "m.qmd", "---\nservings: [1, 2]\n---\n")
	writeDoc(t, dir, "z.qmd", goodDoc("Z"))

	var log bytes.Buffer
	recipes, _, summary, err := Run(types.IndexConfig{InputDir: dir}, &log)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if summary.Indexed != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want 2 indexed, 1 failed", summary)
	}
	if len(recipes) != 2 {
		t.Errorf("recipes = %+v, want 2 records", recipes)
	}
}

func TestRun_MissingInputDir(t *testing.T) {
	var log bytes.Buffer
	_, _, _, err := Run(types.IndexConfig{InputDir: filepath.Join(t.TempDir(), "nope")}, &log)
	if err == nil {
		t.Fatal("expected fatal error for missing input directory")
	}
}
