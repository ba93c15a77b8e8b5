package lang

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFileLanguage(t *testing.T) {
	tests := []struct {
		path   string
		want   Language
		wantOk bool
	}{
		{"main.py", "python", true},
		{"app.PY", "python", true},
		{"server.ts", "typescript", true},
		{"component.tsx", "typescript", true},
		{"index.js", "javascript", true},
		{"main.go", "go", true},
		{"lib.rs", "rust", true},
		{"Main.java", "java", true},
		{"src/deep/nested/util.rb", "ruby", true},
		{"notes.txt", "", false},
		{"Makefile", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := DetectFileLanguage(tt.path)
		if ok != tt.wantOk || (ok && got != tt.want) {
			t.Errorf("DetectFileLanguage(%q) = (%q, %v), want (%q, %v)",
				tt.path, got, ok, tt.want, tt.wantOk)
		}
	}
}

// The first language claiming an extension wins, so headers classify as cpp.
func TestDetectFileLanguageOverlappingExtensions(t *testing.T) {
	got, ok := DetectFileLanguage("defs.h")
	if !ok || got != "cpp" {
		t.Errorf("DetectFileLanguage(defs.h) = (%q, %v), want (cpp, true)", got, ok)
	}

	got, ok = DetectFileLanguage("impl.c")
	if !ok || got != "c" {
		t.Errorf("DetectFileLanguage(impl.c) = (%q, %v), want (c, true)", got, ok)
	}
}

func TestDetectDirectoryLanguages(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"main.py",
		"util.py",
		"scripts/helper.py",
		"web/app.ts",
		"README.md",
	}
	for _, name := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	counts := DetectDirectoryLanguages(dir)

	if got, want := counts["python"], 3; got != want {
		t.Errorf("python count = %d, want %d", got, want)
	}
	if got, want := counts["typescript"], 1; got != want {
		t.Errorf("typescript count = %d, want %d", got, want)
	}
	if len(counts) != 2 {
		t.Errorf("got %d languages, want 2: %v", len(counts), counts)
	}
}

func TestDetectDirectoryLanguagesMissingDir(t *testing.T) {
	counts := DetectDirectoryLanguages(filepath.Join(t.TempDir(), "nope"))
	if len(counts) != 0 {
		t.Errorf("got %v, want empty map", counts)
	}
}

func TestPrimaryLanguage(t *testing.T) {
	counts := map[Language]int{"python": 5, "go": 2, "rust": 1}
	got, ok := PrimaryLanguage(counts)
	if !ok || got != "python" {
		t.Errorf("PrimaryLanguage = (%q, %v), want (python, true)", got, ok)
	}
}

func TestPrimaryLanguageTieBreaksAlphabetically(t *testing.T) {
	counts := map[Language]int{"python": 3, "go": 3, "rust": 3}
	got, ok := PrimaryLanguage(counts)
	if !ok || got != "go" {
		t.Errorf("PrimaryLanguage = (%q, %v), want (go, true)", got, ok)
	}
}

func TestPrimaryLanguageEmpty(t *testing.T) {
	if _, ok := PrimaryLanguage(nil); ok {
		t.Error("PrimaryLanguage(nil) reported a language")
	}
}
