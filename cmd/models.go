package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/sketchpad/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the known models with default temperatures and pricing",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-10s %-32s %-6s %s\n", "PROVIDER", "MODEL", "TEMP", "USD PER 1M (IN/OUT)")
		for _, m := range llm.KnownModels() {
			price := "free"
			if m.InputPerMillion > 0 || m.OutputPerMillion > 0 {
				price = fmt.Sprintf("$%.2f / $%.2f", m.InputPerMillion, m.OutputPerMillion)
			}
			fmt.Printf("%-10s %-32s %-6.1f %s\n", m.Provider, m.ID, m.DefaultTemperature, price)
		}
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
