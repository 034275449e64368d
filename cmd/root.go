package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "concierge",
	Short: "AI concierge for the private markets dashboard",
	Long:  "Classifies investor questions into response tiers, grounds market-level questions with web search, and generates tier-specific answers via an LLM provider.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
