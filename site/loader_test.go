package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeContent creates a file under root, making parent directories.
func writeContent(t *testing.T, root, name, data string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(data), 0o644))
}

func TestLoadContentMissingRoot(t *testing.T) {
	_, err := LoadContent(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestLoadContentEmpty(t *testing.T) {
	docs, err := LoadContent(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestLoadContent(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, "blog/first-post/index.md", "---\ntitle: First\ndate: 2024-01-01\n---\nHello.\n")
	writeContent(t, root, "page/about.md", "+++\ntitle = \"About\"\n+++\nMe.\n")
	writeContent(t, root, "page/untitled-thing.md", "Just text.\n")

	docs, err := LoadContent(root)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	byPath := map[string]Document{}
	for _, d := range docs {
		byPath[d.Path] = d
	}

	first := byPath["blog/first-post/index.md"]
	require.Equal(t, TypeBlog, first.Type)
	require.Equal(t, "first-post", first.Slug)
	require.Equal(t, "First", first.FrontMatter.Title)
	require.Equal(t, "/blog/first-post/", first.URL())

	about := byPath["page/about.md"]
	require.Equal(t, TypePage, about.Type)
	require.Equal(t, "about", about.Slug)
	require.Equal(t, "/about/", about.URL())

	// Missing title falls back to a title-cased slug.
	untitled := byPath["page/untitled-thing.md"]
	require.Equal(t, "Untitled Thing", untitled.FrontMatter.Title)
}

func TestLoadContentOrderDeterministic(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, "blog/b/index.md", "b\n")
	writeContent(t, root, "blog/a/index.md", "a\n")
	docs, err := LoadContent(root)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "blog/a/index.md", docs[0].Path)
	require.Equal(t, "blog/b/index.md", docs[1].Path)
}

func TestLoadContentMalformed(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, "blog/bad/index.md", "---\ntitle: [unclosed\n---\nx\n")
	_, err := LoadContent(root)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedContent), "expected ErrMalformedContent, got %v", err)
}

func TestDocumentOutputURLs(t *testing.T) {
	d := Document{
		Type: TypeBlog,
		Slug: "hello",
		FrontMatter: FrontMatter{
			Aliases: []string{"/blog/2024/01/01/hello"},
		},
	}
	require.Equal(t, []string{"/blog/hello/", "/blog/2024/01/01/hello/"}, d.OutputURLs())
}
