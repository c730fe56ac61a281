package site

import "strings"

// Type classifies a content document by its position in the content tree.
type Type string

const (
	TypeBlog Type = "blog" // dated articles under content/blog
	TypePage Type = "page" // standalone pages
)

// Document represents one Markdown source file. Documents are created by the
// loader and immutable thereafter; each one maps to exactly one rendered page
// per output location.
type Document struct {
	Path        string      // source path relative to the content root
	Type        Type        // blog or page
	Slug        string      // URL-safe identifier derived from the file location
	FrontMatter FrontMatter // metadata from the top of the file
	Body        []byte      // Markdown with front matter removed
}

// URL reports the logical site path of the document, always with leading and
// trailing slashes. The front matter url takes precedence over the location
// derived from the content tree.
func (d *Document) URL() string {
	if d.FrontMatter.URL != "" {
		return canonicalURL(d.FrontMatter.URL)
	}
	if d.Type == TypeBlog {
		return "/blog/" + d.Slug + "/"
	}
	return "/" + d.Slug + "/"
}

// OutputURLs reports every site path the document should be written to:
// its URL plus any front matter aliases.
func (d *Document) OutputURLs() []string {
	urls := []string{d.URL()}
	for _, a := range d.FrontMatter.Aliases {
		urls = append(urls, canonicalURL(a))
	}
	return urls
}

// canonicalURL normalizes a site path to have a leading and trailing slash.
func canonicalURL(u string) string {
	u = strings.Trim(u, "/")
	if u == "" {
		return "/"
	}
	return "/" + u + "/"
}
