package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vellumpress/vellum/internal/logging"
)

var (
	configFile string
	verbose    bool
	log        *zap.SugaredLogger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vellum",
	Short: "A personal static site generator",
	Long: `Vellum converts a tree of Markdown content into a publishable HTML site.
Content lives under content/blog/<slug>/index.md and content/page/<name>.md,
templates under templates/, and the result is written to the output directory
from config.yaml.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(verbose)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
