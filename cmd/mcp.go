package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sketchpad/internal/examples"
	mcpserver "github.com/ziadkadry99/sketchpad/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing sketch generation, fence extraction, normalization, preview building, and the example library to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, err := createProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		// list_examples only needs the listing, so a failed embedder just
		// means no search index behind it.
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: example search disabled: %v\n", err)
			embedder = nil
		}

		library, err := examples.NewLibrary(cfg.Studio.SketchDir, embedder)
		if err != nil {
			return fmt.Errorf("loading example library: %w", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "sketchpad MCP server started on stdio (model=%s, examples=%d)\n", cfg.Provider.Model, library.Len())

		srv := mcpserver.NewServer(sessionConfigFromConfig(cfg, provider), library)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
