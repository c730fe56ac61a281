package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings from the config.yaml file.
type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Paths PathsConfig `yaml:"paths"`
	Build BuildConfig `yaml:"build"`
	Feeds FeedsConfig `yaml:"feeds"`
}

// SiteConfig describes the site itself.
type SiteConfig struct {
	Title       string `yaml:"title"`       // Site title, used on index pages and feeds
	Author      string `yaml:"author"`      // Feed author
	URL         string `yaml:"url"`         // Canonical base URL, no trailing slash
	Description string `yaml:"description"` // Feed subtitle
}

// PathsConfig locates the input and output directories.
type PathsConfig struct {
	Content   string `yaml:"content"`   // Markdown content root
	Output    string `yaml:"output"`    // Publishable output directory
	Templates string `yaml:"templates"` // HTML templates
	Static    string `yaml:"static"`    // Static assets copied as-is
}

// BuildConfig tunes the build.
type BuildConfig struct {
	PostsPerPage  int  `yaml:"posts_per_page"` // Posts shown on the home page
	IncludeDrafts bool `yaml:"include_drafts"` // Render documents marked draft
}

// FeedsConfig controls RSS and Atom generation.
type FeedsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	RSSPath  string `yaml:"rss_path"`
	AtomPath string `yaml:"atom_path"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Title:       "My Site",
			Author:      "Anonymous",
			URL:         "https://example.com",
			Description: "Personal blog and writings",
		},
		Paths: PathsConfig{
			Content:   "content",
			Output:    "public",
			Templates: "templates",
			Static:    "static",
		},
		Build: BuildConfig{
			PostsPerPage: 20,
		},
		Feeds: FeedsConfig{
			Enabled:  true,
			RSSPath:  "feed/rss",
			AtomPath: "feed/atom",
		},
	}
}

// LoadConfig reads the configuration file at name, merging user values over
// the defaults. It is not an error if the file does not exist; in that case
// the defaults are returned unchanged.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	// Unmarshal over the defaults so absent keys keep their default values.
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	return cfg, nil
}
