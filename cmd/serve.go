package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sketchpad/internal/examples"
	"github.com/ziadkadry99/sketchpad/internal/reference"
	"github.com/ziadkadry99/sketchpad/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sketchpad studio server",
	Long:  `Starts the studio server: browser editor with a live sandboxed preview, AI generation proxy, example gallery, and p5.js reference pages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		// Create LLM provider.
		provider, err := createProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		// Create the embeddings backend. A missing API key disables library
		// search but never stops the studio.
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: example search disabled: %v\n", err)
			embedder = nil
		}

		library, err := examples.NewLibrary(cfg.Studio.SketchDir, embedder)
		if err != nil {
			return fmt.Errorf("loading example library: %w", err)
		}

		ref, err := reference.New()
		if err != nil {
			return fmt.Errorf("loading reference pages: %w", err)
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowAll:       cfg.Server.AllowAllOrigins,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}, sessionConfigFromConfig(cfg, provider), library, ref)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "sketchpad v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Model:    %s (%s)\n", cfg.Provider.Model, cfg.Provider.Name)
		fmt.Fprintf(os.Stderr, "  Examples: %d\n", library.Len())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
