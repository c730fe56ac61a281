// Package publish runs the build pipeline: load content, render each
// document, and write the publishable site to the output directory.
package publish

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vellumpress/vellum/render"
	"github.com/vellumpress/vellum/site"
)

// Builder holds everything needed to build the site once.
type Builder struct {
	cfg site.Config
	rnd *render.Renderer
	log *zap.SugaredLogger
}

// New creates a Builder, loading the site templates.
func New(cfg site.Config, log *zap.SugaredLogger) (*Builder, error) {
	tpl, err := render.LoadTemplates(cfg.Paths.Templates)
	if err != nil {
		return nil, err
	}
	return &Builder{
		cfg: cfg,
		rnd: render.NewRenderer(cfg.Site, tpl),
		log: log,
	}, nil
}

// post pairs a blog document with its rendered Markdown body, which the
// listing pages and feeds reuse.
type post struct {
	doc     site.Document
	content template.HTML
}

// Run performs one complete build. It is a single-threaded batch: read all
// content, render, write all output. The first error halts the build.
func (b *Builder) Run() error {
	start := time.Now()

	docs, err := site.LoadContent(b.cfg.Paths.Content)
	if err != nil {
		return err
	}
	b.log.Infow("loaded content", "documents", len(docs))

	// Start from a clean output directory so stale pages never survive.
	if err := os.RemoveAll(b.cfg.Paths.Output); err != nil {
		return fmt.Errorf("Run: clean output: %w", err)
	}
	if err := os.MkdirAll(b.cfg.Paths.Output, 0o755); err != nil {
		return fmt.Errorf("Run: create output: %w", err)
	}

	var posts []post
	for i := range docs {
		doc := &docs[i]
		if doc.FrontMatter.Draft && !b.cfg.Build.IncludeDrafts {
			b.log.Infow("skipping draft", "path", doc.Path)
			continue
		}
		content, err := render.Markdown(doc.Body)
		if err != nil {
			return err
		}
		html, err := b.rnd.Document(doc, content)
		if err != nil {
			return err
		}
		for _, u := range doc.OutputURLs() {
			if err := b.writePage(Page{Path: outputPath(u), HTML: html}); err != nil {
				return err
			}
		}
		if doc.Type == site.TypeBlog {
			posts = append(posts, post{doc: *doc, content: content})
		}
	}
	sortPosts(posts)

	if err := b.buildIndexes(posts); err != nil {
		return err
	}
	if err := b.buildTags(posts); err != nil {
		return err
	}
	if err := b.buildArchives(posts); err != nil {
		return err
	}
	if err := b.buildFeeds(posts); err != nil {
		return err
	}
	if err := b.buildSitemap(posts); err != nil {
		return err
	}
	if err := b.copyStatic(); err != nil {
		return err
	}
	if err := b.copyTexts(); err != nil {
		return err
	}
	if err := b.copyCNAME(); err != nil {
		return err
	}

	b.log.Infow("build complete", "posts", len(posts), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
