package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vellumpress/vellum/site"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// Templates wraps the site's parsed HTML templates.
type Templates struct {
	tpl *template.Template
}

// LoadTemplates parses the HTML templates from dir. If dir does not exist,
// the embedded default templates are used so a site can render without any
// template setup.
func LoadTemplates(dir string) (*Templates, error) {
	funcMap := template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"slugify":    site.Slugify,
		"datefmt":    datefmt,
		"markdown":   Markdown,
		"now":        time.Now,
	}
	fi, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("vellum").Funcs(funcMap).ParseFS(defaultTemplates, "templates/*.html")
		if err != nil {
			return nil, fmt.Errorf("LoadTemplates: %w", err)
		}
		return &Templates{tpl: tpl}, nil
	}
	tpl, err := template.New("vellum").Funcs(funcMap).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("LoadTemplates: %w", errors.Join(site.ErrTemplate, err))
	}
	return &Templates{tpl: tpl}, nil
}

// lookup finds a template by bare name or by file name.
func (t *Templates) lookup(name string) *template.Template {
	if tpl := t.tpl.Lookup(name); tpl != nil {
		return tpl
	}
	return t.tpl.Lookup(name + ".html")
}

// Execute renders the named template with the given data. A missing template
// or an execution failure is reported as a template error.
func (t *Templates) Execute(name string, data any) ([]byte, error) {
	tpl := t.lookup(name)
	if tpl == nil {
		return nil, fmt.Errorf("Execute: template %q: %w", name, site.ErrTemplate)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("Execute: template %q: %w", name, errors.Join(site.ErrTemplate, err))
	}
	return buf.Bytes(), nil
}

// datefmt formats a time for use in templates.
func datefmt(layout string, t time.Time) string {
	return t.Format(layout)
}
