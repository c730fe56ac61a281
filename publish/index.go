package publish

import (
	"sort"

	"github.com/vellumpress/vellum/render"
)

// sortPosts orders posts newest first. Undated posts sort last, and equal
// dates fall back to slug order so listings are deterministic.
func sortPosts(posts []post) {
	sort.SliceStable(posts, func(i, j int) bool {
		di, dj := posts[i].doc.FrontMatter.Date, posts[j].doc.FrontMatter.Date
		if di.Equal(dj) {
			return posts[i].doc.Slug < posts[j].doc.Slug
		}
		if di.IsZero() {
			return false
		}
		if dj.IsZero() {
			return true
		}
		return dj.Before(di)
	})
}

// postRef builds the listing entry for a post.
func postRef(p post) render.PostRef {
	return render.PostRef{
		Title:       p.doc.FrontMatter.Title,
		URL:         p.doc.URL(),
		Date:        p.doc.FrontMatter.Date,
		Tags:        p.doc.FrontMatter.Tags,
		Description: p.doc.FrontMatter.Description,
	}
}

// postRefs builds listing entries for all posts, preserving their order.
func postRefs(posts []post) []render.PostRef {
	refs := make([]render.PostRef, len(posts))
	for i, p := range posts {
		refs[i] = postRef(p)
	}
	return refs
}

// buildIndexes writes the home page with the most recent posts and the
// full listing at /blog/.
func (b *Builder) buildIndexes(posts []post) error {
	refs := postRefs(posts)

	n := b.cfg.Build.PostsPerPage
	if n <= 0 || n > len(refs) {
		n = len(refs)
	}
	out, err := b.rnd.List("index", render.ListData{
		Title:    b.cfg.Site.Title,
		Subtitle: "Latest posts",
		Posts:    refs[:n],
	})
	if err != nil {
		return err
	}
	if err := b.writePage(Page{Path: "index.html", HTML: out}); err != nil {
		return err
	}

	out, err = b.rnd.List("index", render.ListData{
		Title:    b.cfg.Site.Title,
		Subtitle: "All posts",
		Posts:    refs,
	})
	if err != nil {
		return err
	}
	return b.writePage(Page{Path: outputPath("/blog/"), HTML: out})
}
