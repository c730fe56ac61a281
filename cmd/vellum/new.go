package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vellumpress/vellum/site"
)

var (
	newTitle       string
	newTags        []string
	newDescription string
	newDraft       bool
	newDate        string
)

// dateLayouts are the accepted formats for the --date flag.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// newCmd scaffolds a new blog post.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new blog post",
	Long: `New creates content/blog/<slug>/index.md with YAML front matter filled in
from the flags. The slug is derived from the title.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := site.LoadConfig(configFile)
		if err != nil {
			return err
		}
		date := time.Now().UTC()
		if newDate != "" {
			date, err = parseDate(newDate)
			if err != nil {
				return err
			}
		}
		return scaffoldPost(cfg, newTitle, date)
	},
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q; use YYYY-MM-DD or RFC3339", s)
}

func scaffoldPost(cfg site.Config, title string, date time.Time) error {
	slug := site.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	tags := make([]string, len(newTags))
	for i, t := range newTags {
		tags[i] = site.Slugify(t)
	}
	fm := struct {
		Title       string    `yaml:"title"`
		Date        time.Time `yaml:"date"`
		Tags        []string  `yaml:"tags,omitempty"`
		Description string    `yaml:"description,omitempty"`
		Draft       bool      `yaml:"draft,omitempty"`
		URL         string    `yaml:"url"`
		Aliases     []string  `yaml:"aliases"`
	}{
		Title:       title,
		Date:        date,
		Tags:        tags,
		Description: newDescription,
		Draft:       newDraft,
		URL:         "/blog/" + slug + "/",
		Aliases:     []string{"/blog/" + date.Format("2006/01/02") + "/" + slug + "/"},
	}
	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		return err
	}

	dir := filepath.Join(cfg.Paths.Content, "blog", slug)
	name := filepath.Join(dir, "index.md")
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("%s already exists", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	content := fmt.Sprintf("---\n%s---\n\n# %s\n", fmBytes, title)
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		return err
	}
	log.Infow("created", "path", name)
	return nil
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "Post title (required)")
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "Comma-separated tags")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Short description")
	newCmd.Flags().BoolVar(&newDraft, "draft", false, "Mark the post as a draft")
	newCmd.Flags().StringVar(&newDate, "date", "", "Publish date (default now)")
	_ = newCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(newCmd)
}
