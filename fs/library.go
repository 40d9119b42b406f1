// Package fs provides a filesystem-backed implementation of
// askdocs.Registry and askdocs.DocumentSource over a flat directory of
// markdown knowledge files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ryderstorm/askdocs"
	"golang.org/x/sync/errgroup"
)

// readConcurrency bounds the number of knowledge files read in parallel by
// Documents.
const readConcurrency = 8

// Ensure Library implements the domain interfaces at compile time.
var (
	_ askdocs.Registry       = (*Library)(nil)
	_ askdocs.DocumentSource = (*Library)(nil)
)

// Library exposes the markdown files of a single directory as knowledge
// documents. The directory is created if absent; creating it again is a
// no-op. Library is read-only after construction and safe for concurrent use.
type Library struct {
	dir string
}

// NewLibrary creates a Library rooted at dir, creating the directory if it
// does not exist.
func NewLibrary(dir string) (*Library, error) {
	if dir == "" {
		return nil, askdocs.Errorf(askdocs.EINVALID, "knowledge directory required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, askdocs.Errorf(askdocs.EINTERNAL, "cannot create knowledge directory %q", dir)
	}
	return &Library{dir: dir}, nil
}

// Dir returns the knowledge directory path.
func (l *Library) Dir() string {
	return l.dir
}

// Files returns the base names of all knowledge files, sorted by name so the
// order is stable between calls absent disk changes.
func (l *Library) Files(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, askdocs.Errorf(askdocs.EINTERNAL, "cannot list knowledge directory %q", l.dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), askdocs.KnowledgeExt) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Documents reads the contents of all knowledge files, preserving the order
// of Files. Reads run concurrently; a file that disappears or cannot be read
// is skipped rather than failing the whole listing.
func (l *Library) Documents(ctx context.Context) ([]*askdocs.Document, error) {
	names, err := l.Files(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]*askdocs.Document, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(filepath.Join(l.dir, name))
			if err != nil {
				// Skip files that vanished or cannot be read.
				return nil
			}
			docs[i] = &askdocs.Document{Name: name, Content: string(content)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*askdocs.Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	return out, nil
}
