package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sketchpad/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sketchpad",
	Short: "AI-assisted p5.js sketch studio",
	Long: `Sketchpad runs a browser studio for p5.js sketches: a live editor with
a sandboxed preview, AI generation from natural language prompts, an
example gallery, and a built-in p5.js reference. The same generation
pipeline is available to AI agents over MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.ConfigFileName, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
