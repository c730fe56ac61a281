package site

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LoadContent walks the content root and returns one Document per Markdown
// file found, in a deterministic order. A missing or non-directory root is
// reported as ErrNotFound. A root with no Markdown files yields an empty
// slice, not an error.
func LoadContent(root string) ([]Document, error) {
	fi, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("LoadContent %q: %w", root, ErrNotFound)
		}
		return nil, fmt.Errorf("LoadContent %q: %w", root, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("LoadContent %q: not a directory: %w", root, ErrNotFound)
	}
	return loadContent(os.DirFS(root))
}

// loadContent discovers and reads every Markdown file in fsys.
func loadContent(fsys fs.FS) ([]Document, error) {
	names, err := doublestar.Glob(fsys, "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("loadContent: %w", err)
	}
	// Glob order is not specified; sort for reproducible builds.
	sort.Strings(names)
	docs := make([]Document, 0, len(names))
	for _, name := range names {
		doc, err := loadDocument(fsys, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// loadDocument reads a single Markdown file into a Document.
func loadDocument(fsys fs.FS, name string) (Document, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("loadDocument %q: %w", name, errors.Join(ErrMalformedContent, err))
	}
	doc := Document{Path: name}
	doc.Body, err = ParseFrontMatter(bytes.NewReader(b), &doc.FrontMatter)
	if err != nil {
		return Document{}, fmt.Errorf("loadDocument %q: %w", name, errors.Join(ErrMalformedContent, err))
	}
	doc.Type, doc.Slug = classify(name)
	if doc.FrontMatter.Title == "" {
		// Turn "my-first-post" into "My First Post". A cases.Caser is not
		// safe for concurrent use, so build one per document.
		doc.FrontMatter.Title = cases.Title(language.English).String(strings.ReplaceAll(doc.Slug, "-", " "))
	}
	return doc, nil
}

// classify derives the content type and slug from the file's position in the
// content tree. Blog posts live at blog/<slug>/index.md; everything else is
// a page whose slug comes from the file name.
func classify(name string) (Type, string) {
	base := strings.TrimSuffix(path.Base(name), ".md")
	parts := strings.Split(name, "/")
	if parts[0] == "blog" {
		if base == "index" && len(parts) > 2 {
			return TypeBlog, Slugify(parts[len(parts)-2])
		}
		return TypeBlog, Slugify(base)
	}
	if base == "index" && len(parts) > 1 {
		return TypePage, Slugify(parts[len(parts)-2])
	}
	return TypePage, Slugify(base)
}
