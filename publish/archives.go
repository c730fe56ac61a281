package publish

import (
	"sort"

	"github.com/vellumpress/vellum/render"
)

// buildArchives writes date-based listing pages at /blog/<yyyy>/,
// /blog/<yyyy>/<mm>/, and /blog/<yyyy>/<mm>/<dd>/. Undated posts do not
// appear in archives.
func (b *Builder) buildArchives(posts []post) error {
	groups := make(map[string][]render.PostRef)
	for _, p := range posts {
		d := p.doc.FrontMatter.Date
		if d.IsZero() {
			continue
		}
		for _, key := range []string{d.Format("2006"), d.Format("2006/01"), d.Format("2006/01/02")} {
			groups[key] = append(groups[key], postRef(p))
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		out, err := b.rnd.List("index", render.ListData{
			Title:    b.cfg.Site.Title,
			Subtitle: "Archive",
			Posts:    groups[k],
		})
		if err != nil {
			return err
		}
		if err := b.writePage(Page{Path: outputPath("/blog/" + k + "/"), HTML: out}); err != nil {
			return err
		}
	}
	return nil
}
