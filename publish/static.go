package publish

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vellumpress/vellum/site"
)

// copyStatic copies the static assets directory into <output>/static.
// A missing static directory is not an error.
func (b *Builder) copyStatic() error {
	src := b.cfg.Paths.Static
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		b.log.Infow("no static directory, skipping", "path", src)
		return nil
	}
	dst := filepath.Join(b.cfg.Paths.Output, "static")
	if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
		return fmt.Errorf("copyStatic: %w", errors.Join(site.ErrIO, err))
	}
	b.log.Infow("copied static assets", "path", dst)
	return nil
}

// copyTexts copies <content>/texts/*.txt files into the output root, for
// things like robots.txt or verification files.
func (b *Builder) copyTexts() error {
	src := filepath.Join(b.cfg.Paths.Content, "texts")
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(src, "*.txt"))
	if err != nil {
		return fmt.Errorf("copyTexts: %w", err)
	}
	for _, name := range matches {
		data, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("copyTexts: %w", errors.Join(site.ErrIO, err))
		}
		dst := filepath.Join(b.cfg.Paths.Output, filepath.Base(name))
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("copyTexts: %w", errors.Join(site.ErrIO, err))
		}
		b.log.Infow("copied", "path", dst)
	}
	return nil
}

// copyCNAME copies a CNAME file from the working directory into the output
// root so GitHub Pages keeps the custom domain.
func (b *Builder) copyCNAME() error {
	data, err := os.ReadFile("CNAME")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("copyCNAME: %w", err)
	}
	dst := filepath.Join(b.cfg.Paths.Output, "CNAME")
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("copyCNAME: %w", errors.Join(site.ErrIO, err))
	}
	b.log.Infow("copied CNAME", "path", dst)
	return nil
}
