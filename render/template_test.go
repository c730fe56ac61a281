package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vellumpress/vellum/site"
)

func TestLoadTemplatesDefaults(t *testing.T) {
	// A missing directory falls back to the embedded templates.
	tpl, err := LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	out, err := tpl.Execute("blog", PageData{
		Site:    site.SiteConfig{Title: "My Site"},
		Title:   "A Post",
		Date:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Content: "<p>hello</p>",
	})
	require.NoError(t, err)
	html := string(out)
	require.Contains(t, html, "A Post")
	require.Contains(t, html, "<p>hello</p>")
	// No unresolved placeholders survive rendering.
	require.NotContains(t, html, "{{")
}

func TestLoadTemplatesCustomDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog.html"), []byte("<title>{{.Title}}</title>"), 0o644))

	tpl, err := LoadTemplates(dir)
	require.NoError(t, err)
	out, err := tpl.Execute("blog", PageData{Title: "Custom"})
	require.NoError(t, err)
	require.Equal(t, "<title>Custom</title>", string(out))
}

func TestExecuteMissingTemplate(t *testing.T) {
	tpl, err := LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	_, err = tpl.Execute("no-such-template", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, site.ErrTemplate), "expected ErrTemplate, got %v", err)
}

func TestDefaultTemplatesComplete(t *testing.T) {
	tpl, err := LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	for _, name := range []string{"blog", "page", "index", "tags"} {
		if tpl.lookup(name) == nil {
			t.Errorf("Missing embedded template %q", name)
		}
	}
}

func TestRendererDocument(t *testing.T) {
	tpl, err := LoadTemplates(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	rnd := NewRenderer(site.SiteConfig{Title: "My Site"}, tpl)

	doc := site.Document{
		Type: site.TypeBlog,
		Slug: "hi",
		FrontMatter: site.FrontMatter{
			Title: "Hi",
			Tags:  []string{"go"},
		},
	}
	content, err := Markdown([]byte("# Hi"))
	require.NoError(t, err)
	out, err := rnd.Document(&doc, content)
	require.NoError(t, err)
	require.Contains(t, string(out), "<h1")
	require.Contains(t, string(out), ">Hi</h1>")
}

func TestRendererDocumentTemplateOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blog.html"), []byte("blog"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "special.html"), []byte("special {{.Title}}"), 0o644))

	tpl, err := LoadTemplates(dir)
	require.NoError(t, err)
	rnd := NewRenderer(site.SiteConfig{}, tpl)

	doc := site.Document{
		Type:        site.TypeBlog,
		FrontMatter: site.FrontMatter{Title: "X", Template: "special"},
	}
	out, err := rnd.Document(&doc, "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "special"), "got %q", out)
}
