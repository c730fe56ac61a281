package publish

import (
	"encoding/xml"
	"fmt"
)

// urlSet is the XML document written to sitemap.xml.
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// buildSitemap writes sitemap.xml listing every published post.
func (b *Builder) buildSitemap(posts []post) error {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range posts {
		e := urlEntry{Loc: b.cfg.Site.URL + p.doc.URL()}
		if d := p.doc.FrontMatter.Date; !d.IsZero() {
			e.LastMod = d.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, e)
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("buildSitemap: %w", err)
	}
	return b.writePage(Page{Path: "sitemap.xml", HTML: append([]byte(xml.Header), out...)})
}
