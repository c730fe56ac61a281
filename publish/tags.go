package publish

import (
	"sort"

	"github.com/vellumpress/vellum/render"
	"github.com/vellumpress/vellum/site"
)

// buildTags writes the tag index at /blog/tags/ and one listing page per
// tag at /blog/tags/<tag>/. Tags are normalized to URL-safe slugs, so
// "Side Projects" and "side-projects" land on the same page.
func (b *Builder) buildTags(posts []post) error {
	byTag := make(map[string][]render.PostRef)
	for _, p := range posts {
		for _, tag := range p.doc.FrontMatter.Tags {
			t := site.Slugify(tag)
			byTag[t] = append(byTag[t], postRef(p))
		}
	}

	names := make([]string, 0, len(byTag))
	for t := range byTag {
		names = append(names, t)
	}
	sort.Strings(names)

	tags := make([]render.TagRef, len(names))
	for i, t := range names {
		tags[i] = render.TagRef{
			Name:  t,
			URL:   "/blog/tags/" + t + "/",
			Count: len(byTag[t]),
		}
	}
	out, err := b.rnd.Tags(render.TagsData{
		Title: "Tags",
		Tags:  tags,
	})
	if err != nil {
		return err
	}
	if err := b.writePage(Page{Path: outputPath("/blog/tags/"), HTML: out}); err != nil {
		return err
	}

	for _, t := range names {
		out, err := b.rnd.List("index", render.ListData{
			Title:    b.cfg.Site.Title,
			Subtitle: "Tagged " + t,
			Posts:    byTag[t],
		})
		if err != nil {
			return err
		}
		if err := b.writePage(Page{Path: outputPath("/blog/tags/" + t + "/"), HTML: out}); err != nil {
			return err
		}
	}
	return nil
}
