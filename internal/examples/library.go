// Package examples holds the starter sketch library: a set of embedded
// p5.js sketches, optionally extended from a local directory, listed and
// searched through the editor API.
package examples

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/sketchpad/internal/embeddings"
)

//go:embed sketches/*.js
var builtinFS embed.FS

// Example is one library entry. Name comes from the filename, Description
// from a leading line comment, Code is the full file.
type Example struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// Library is the loaded example collection. Entries from the local sketch
// directory override embedded ones with the same name.
type Library struct {
	examples []Example
	byName   map[string]Example
	searcher *searcher
}

// NewLibrary loads the embedded sketches plus any *.js files under localDir.
// A nil embedder leaves search disabled.
func NewLibrary(localDir string, embedder embeddings.Embedder) (*Library, error) {
	l := &Library{byName: make(map[string]Example)}

	if err := l.loadFS(builtinFS, "sketches/**/*.js"); err != nil {
		return nil, fmt.Errorf("load embedded sketches: %w", err)
	}
	if localDir != "" {
		if err := l.loadFS(os.DirFS(localDir), "**/*.js"); err != nil {
			return nil, fmt.Errorf("load sketch dir %s: %w", localDir, err)
		}
	}

	l.examples = make([]Example, 0, len(l.byName))
	for _, ex := range l.byName {
		l.examples = append(l.examples, ex)
	}
	sort.Slice(l.examples, func(i, j int) bool { return l.examples[i].Name < l.examples[j].Name })

	if embedder != nil {
		l.searcher = newSearcher(embedder)
	}
	return l, nil
}

func (l *Library) loadFS(fsys fs.FS, pattern string) error {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("glob %s: %w", pattern, err)
	}

	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return fmt.Errorf("read %s: %w", m, err)
		}
		name := strings.TrimSuffix(path.Base(m), ".js")
		l.byName[name] = Example{
			Name:        name,
			Description: parseDescription(string(data)),
			Code:        string(data),
		}
	}
	return nil
}

// parseDescription returns the text of a line comment on the first line, or
// an empty string when the sketch starts with code.
func parseDescription(src string) string {
	first, _, _ := strings.Cut(src, "\n")
	first = strings.TrimSpace(first)
	if strings.HasPrefix(first, "//") {
		return strings.TrimSpace(strings.TrimPrefix(first, "//"))
	}
	return ""
}

// List returns all examples without code, sorted by name.
func (l *Library) List() []Example {
	out := make([]Example, len(l.examples))
	for i, ex := range l.examples {
		ex.Code = ""
		out[i] = ex
	}
	return out
}

// Get returns the named example with its code.
func (l *Library) Get(name string) (Example, bool) {
	ex, ok := l.byName[name]
	return ex, ok
}

// Len returns the number of loaded examples.
func (l *Library) Len() int {
	return len(l.examples)
}
