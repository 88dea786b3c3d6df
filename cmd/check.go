package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webforge-ai/webforge/internal/agent"
)

func newCheckConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Show the resolved configuration and token budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := initConfig()

			fmt.Println(titleStyle.Render("Configuration"))
			fmt.Printf("  Provider:   %s\n", cfg.Provider)
			fmt.Printf("  Model:      %s\n", orDefault(cfg.Model, "(provider default)"))
			fmt.Printf("  API key:    %s\n", maskKey(cfg.APIKey()))
			fmt.Printf("  Output dir: %s\n", cfg.OutputDir)

			limits := tokenLimits(cfg)
			fmt.Println()
			fmt.Println(titleStyle.Render("Token budgets"))
			for _, model := range []string{"gpt-4o", "gpt-4.1", "gpt-4o-mini", "o3", "claude-sonnet-4-20250514"} {
				b := limits.SafeLimit(model)
				fmt.Printf("  %-26s total=%d context=%d response=%d\n", model, b.Total, b.Context, b.Response)
			}

			fmt.Println()
			fmt.Println(titleStyle.Render("Agent models"))
			for key, persona := range agent.Crew() {
				model := persona.PreferredModel
				if m, ok := cfg.AgentModels[key]; ok && m != "" {
					model = m + " (override)"
				}
				fmt.Printf("  %-20s %s\n", key, model)
			}

			if cfg.APIKey() == "" {
				fmt.Println()
				fmt.Println(errorStyle.Render("✗ No API key configured for the active provider."))
				return nil
			}
			fmt.Println()
			fmt.Println(successStyle.Render("✓ Configuration looks complete."))
			return nil
		},
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// maskKey keeps only the first and last few characters of a key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
