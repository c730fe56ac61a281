package publish

import (
	"path"
	"time"

	"github.com/gorilla/feeds"
)

// buildFeeds writes the RSS and Atom feeds. Entries are emitted oldest
// first; drafts never reach this point because the build filters them
// before rendering.
func (b *Builder) buildFeeds(posts []post) error {
	if !b.cfg.Feeds.Enabled {
		b.log.Debugw("feeds disabled, skipping")
		return nil
	}

	feed := &feeds.Feed{
		Title:       b.cfg.Site.Title,
		Link:        &feeds.Link{Href: b.cfg.Site.URL},
		Description: b.cfg.Site.Description,
		Author:      &feeds.Author{Name: b.cfg.Site.Author},
		Created:     time.Now(),
	}
	for i := len(posts) - 1; i >= 0; i-- {
		p := posts[i]
		link := b.cfg.Site.URL + p.doc.URL()
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       p.doc.FrontMatter.Title,
			Link:        &feeds.Link{Href: link},
			Author:      &feeds.Author{Name: b.cfg.Site.Author},
			Description: p.doc.FrontMatter.Description,
			Content:     string(p.content),
			Created:     p.doc.FrontMatter.Date,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		return err
	}
	if err := b.writePage(Page{Path: path.Join(b.cfg.Feeds.RSSPath, "rss.xml"), HTML: []byte(rss)}); err != nil {
		return err
	}
	atom, err := feed.ToAtom()
	if err != nil {
		return err
	}
	return b.writePage(Page{Path: path.Join(b.cfg.Feeds.AtomPath, "atom.xml"), HTML: []byte(atom)})
}
