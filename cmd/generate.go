package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sketchpad/internal/llm"
	"github.com/ziadkadry99/sketchpad/internal/progress"
	"github.com/ziadkadry99/sketchpad/internal/sketch"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate a sketch from a prompt without starting the studio",
	Long:  `Sends one prompt through the generation pipeline and prints the resulting p5.js code to stdout, or writes it with --out. --count produces several variations.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("out", "", "write the code to this file instead of stdout")
	generateCmd.Flags().Int("count", 1, "number of variations to generate")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prompt := args[0]
	outPath, _ := cmd.Flags().GetString("out")
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		count = 1
	}

	provider, err := createProviderFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}

	model := cfg.Provider.Model
	req := llm.CompletionRequest{
		Model: model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: sketch.SystemInstruction},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   cfg.Generation.MaxTokens,
		Temperature: llm.DefaultTemperature(model),
		TopP:        cfg.Generation.TopP,
		TopK:        cfg.Generation.TopK,
	}

	// Collect all variations first so the progress bar never interleaves
	// with the code output.
	var reporter progress.Reporter
	if count > 1 {
		reporter = progress.NewReporter()
		reporter.Start(count)
	}

	var inputTokens, outputTokens int
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		resp, err := provider.Complete(ctx, req)
		if err != nil {
			finishReporter(reporter)
			return fmt.Errorf("generation failed: %w", err)
		}
		inputTokens += resp.InputTokens
		outputTokens += resp.OutputTokens

		code, err := sketch.ExtractCode(resp.Content)
		if err != nil {
			finishReporter(reporter)
			return fmt.Errorf("parsing model response: %w", err)
		}
		codes = append(codes, code)

		if reporter != nil {
			reporter.Update(i+1, fmt.Sprintf("variation %d/%d", i+1, count))
		}
	}
	finishReporter(reporter)

	if outPath == "" {
		for i, code := range codes {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(code)
		}
	} else {
		for i, code := range codes {
			path := variationPath(outPath, i, count)
			if err := os.WriteFile(path, []byte(code+"\n"), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		}
	}

	cost := llm.EstimateCost(model, inputTokens, outputTokens)
	if cost > 0 {
		fmt.Fprintf(os.Stderr, "Estimated cost: $%.4f (%d input, %d output tokens)\n", cost, inputTokens, outputTokens)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Duration: %s\n", time.Since(start).Round(time.Millisecond))
	}

	return nil
}

func finishReporter(r progress.Reporter) {
	if r != nil {
		r.Finish()
	}
}

// variationPath derives the file name for variation i: with count 3 and out
// "sketch.js" the files are sketch-1.js, sketch-2.js, sketch-3.js.
func variationPath(outPath string, i, count int) string {
	if count == 1 {
		return outPath
	}
	ext := filepath.Ext(outPath)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(outPath, ext), i+1, ext)
}
