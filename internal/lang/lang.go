// Package lang maps file paths to programming languages by extension and
// tallies languages across directory trees. Classification is purely
// name-based; file contents are never inspected.
package lang

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Language identifies a programming language, e.g. "python" or "go".
type Language string

// Unknown is returned when no language can be resolved.
const Unknown Language = "unknown"

// String returns the language name.
func (l Language) String() string {
	return string(l)
}

// languageExtensions lists each supported language with its file extensions.
// Order matters for overlapping extensions: the first language claiming an
// extension wins (".h" classifies as cpp, not c).
var languageExtensions = []struct {
	language   Language
	extensions []string
}{
	{"python", []string{".py", ".pyw", ".pyi"}},
	{"javascript", []string{".js", ".mjs", ".cjs"}},
	{"typescript", []string{".ts", ".tsx", ".mts", ".cts"}},
	{"go", []string{".go"}},
	{"rust", []string{".rs"}},
	{"java", []string{".java"}},
	{"cpp", []string{".cpp", ".cc", ".cxx", ".c++", ".hpp", ".h", ".hh"}},
	{"c", []string{".c"}},
	{"ruby", []string{".rb"}},
	{"php", []string{".php"}},
	{"swift", []string{".swift"}},
	{"kotlin", []string{".kt", ".kts"}},
	{"scala", []string{".scala"}},
	{"csharp", []string{".cs"}},
	{"dart", []string{".dart"}},
	{"elixir", []string{".ex", ".exs"}},
	{"erlang", []string{".erl"}},
	{"haskell", []string{".hs"}},
	{"ocaml", []string{".ml", ".mli"}},
	{"perl", []string{".pl", ".pm"}},
	{"lua", []string{".lua"}},
	{"r", []string{".r"}},
	{"julia", []string{".jl"}},
}

var extensionToLanguage = buildExtensionIndex()

func buildExtensionIndex() map[string]Language {
	index := make(map[string]Language)
	for _, entry := range languageExtensions {
		for _, ext := range entry.extensions {
			if _, taken := index[ext]; !taken {
				index[ext] = entry.language
			}
		}
	}
	return index
}

// DetectFileLanguage returns the language for a file path based on its
// extension. The second return is false when the extension is not recognized.
func DetectFileLanguage(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	language, ok := extensionToLanguage[ext]
	return language, ok
}

// DetectDirectoryLanguages walks dir recursively and counts source files per
// language. Unreadable subtrees are skipped; a missing directory yields an
// empty map. Non-source files with a matching extension are counted, which is
// a known limitation of extension-only classification.
func DetectDirectoryLanguages(dir string) map[Language]int {
	counts := make(map[Language]int)
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if language, ok := DetectFileLanguage(d.Name()); ok {
			counts[language]++
		}
		return nil
	})
	return counts
}

// PrimaryLanguage returns the language with the highest file count. Ties are
// broken alphabetically so the choice does not depend on traversal order.
func PrimaryLanguage(counts map[Language]int) (Language, bool) {
	if len(counts) == 0 {
		return "", false
	}

	names := make([]string, 0, len(counts))
	for language := range counts {
		names = append(names, string(language))
	}
	sort.Strings(names)

	best := Language(names[0])
	for _, name := range names[1:] {
		if counts[Language(name)] > counts[best] {
			best = Language(name)
		}
	}
	return best, true
}
