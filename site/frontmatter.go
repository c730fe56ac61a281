package site

import (
	"fmt"
	"io"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds data scraped from the top of a Markdown file.
type FrontMatter struct {
	Title       string    `yaml:"title" toml:"title"`             // Title of this page
	Date        time.Time `yaml:"date" toml:"date"`               // Date the article appears
	Tags        []string  `yaml:"tags" toml:"tags"`               // Tags to assign to this article
	Description string    `yaml:"description" toml:"description"` // Short summary for listings and feeds
	Draft       bool      `yaml:"draft" toml:"draft"`             // Skip unless drafts are included
	URL         string    `yaml:"url" toml:"url"`                 // Override the output location
	Aliases     []string  `yaml:"aliases" toml:"aliases"`         // Additional output locations
	Template    string    `yaml:"template" toml:"template"`       // Override the template to render this file
}

// formats lists the accepted front matter delimiters. YAML between "---"
// lines and TOML between "+++" lines are both recognized.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// ParseFrontMatter splits the front matter from the Markdown content,
// unmarshaling it into fm and returning the remaining document body.
// A document without front matter is returned unchanged with fm left at
// its zero value.
func ParseFrontMatter(r io.Reader, fm *FrontMatter) ([]byte, error) {
	rest, err := frontmatter.Parse(r, fm, formats...)
	if err != nil {
		return nil, fmt.Errorf("ParseFrontMatter: %w", err)
	}
	return rest, nil
}
