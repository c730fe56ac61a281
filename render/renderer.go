package render

import (
	"html/template"
	"time"

	"github.com/vellumpress/vellum/site"
)

// PageData is what blog and page templates receive.
type PageData struct {
	Site        site.SiteConfig // site-wide settings
	Title       string
	Date        time.Time
	Tags        []string
	Description string
	URL         string
	Content     template.HTML // rendered Markdown
}

// PostRef is a listing entry for one blog post.
type PostRef struct {
	Title       string
	URL         string
	Date        time.Time
	Tags        []string
	Description string
}

// ListData is what the index, archive, and per-tag templates receive.
type ListData struct {
	Site     site.SiteConfig
	Title    string
	Subtitle string
	Posts    []PostRef
}

// TagRef is a listing entry for one tag.
type TagRef struct {
	Name  string
	URL   string
	Count int
}

// TagsData is what the tags index template receives.
type TagsData struct {
	Site  site.SiteConfig
	Title string
	Tags  []TagRef
}

// Renderer turns documents into full HTML pages.
type Renderer struct {
	site site.SiteConfig
	tpl  *Templates
}

// NewRenderer returns a Renderer using the given templates.
func NewRenderer(siteCfg site.SiteConfig, tpl *Templates) *Renderer {
	return &Renderer{site: siteCfg, tpl: tpl}
}

// Document renders a single document with its converted Markdown content.
// The template is chosen by content type ("blog" or "page") unless the
// front matter names one explicitly.
func (r *Renderer) Document(doc *site.Document, content template.HTML) ([]byte, error) {
	name := string(doc.Type)
	if doc.FrontMatter.Template != "" {
		name = doc.FrontMatter.Template
	}
	return r.tpl.Execute(name, PageData{
		Site:        r.site,
		Title:       doc.FrontMatter.Title,
		Date:        doc.FrontMatter.Date,
		Tags:        doc.FrontMatter.Tags,
		Description: doc.FrontMatter.Description,
		URL:         doc.URL(),
		Content:     content,
	})
}

// List renders a listing page (index, archive, or per-tag).
func (r *Renderer) List(name string, data ListData) ([]byte, error) {
	data.Site = r.site
	return r.tpl.Execute(name, data)
}

// Tags renders the tags index page.
func (r *Renderer) Tags(data TagsData) ([]byte, error) {
	data.Site = r.site
	return r.tpl.Execute("tags", data)
}
