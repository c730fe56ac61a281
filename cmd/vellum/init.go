package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigYAML = `# Site configuration
site:
  title: "My Site"
  author: "Anonymous"
  url: "https://example.com"
  description: "Personal blog and writings"

paths:
  content: "content"
  output: "public"
  templates: "templates"
  static: "static"

build:
  posts_per_page: 20
  include_drafts: false

feeds:
  enabled: true
  rss_path: "feed/rss"
  atom_path: "feed/atom"
`

// initCmd writes a starter config.yaml.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("%s already exists", configFile)
		}
		if err := os.WriteFile(configFile, []byte(defaultConfigYAML), 0o644); err != nil {
			return err
		}
		log.Infow("created", "path", configFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
