package main

import (
	"github.com/spf13/cobra"

	"github.com/vellumpress/vellum/publish"
	"github.com/vellumpress/vellum/site"
)

// buildCmd runs one full build of the site.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site",
	Long: `Build reads every Markdown file under the content directory, renders it
through the site templates, and writes the publishable site to the output
directory, along with index pages, tag pages, date archives, feeds, and
a sitemap.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := site.LoadConfig(configFile)
		if err != nil {
			return err
		}
		b, err := publish.New(cfg, log)
		if err != nil {
			return err
		}
		return b.Run()
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
