package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vellumpress/vellum/site"
)

// Page is one rendered HTML page and the output-relative path it is
// written to.
type Page struct {
	Path string // relative to the output directory
	HTML []byte
}

// writePage writes a rendered page under the output directory, creating
// directories as needed.
func (b *Builder) writePage(p Page) error {
	full := filepath.Join(b.cfg.Paths.Output, p.Path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("writePage %q: %w", p.Path, errors.Join(site.ErrIO, err))
	}
	if err := os.WriteFile(full, p.HTML, 0o644); err != nil {
		return fmt.Errorf("writePage %q: %w", p.Path, errors.Join(site.ErrIO, err))
	}
	b.log.Infow("wrote", "path", full)
	return nil
}

// outputPath converts a site URL like "/blog/hello/" into the
// output-relative file path "blog/hello/index.html".
func outputPath(url string) string {
	return filepath.Join(filepath.FromSlash(strings.Trim(url, "/")), "index.html")
}
