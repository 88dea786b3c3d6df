package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webforge-ai/webforge/internal/provider"
)

func newTestLLMCmd() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "test-llm",
		Short: "Send a small test prompt to verify provider connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := initConfig()
			p, err := buildProvider(cfg)
			if err != nil {
				return err
			}

			model := cfg.Model
			if model == "" {
				model = p.DefaultModel()
			}
			fmt.Printf("Testing %s (%s)...\n", p.Name(), model)

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			start := time.Now()
			completion, err := p.Complete(ctx, &provider.CompletionRequest{
				Model:     model,
				Prompt:    prompt,
				MaxTokens: 50,
			})
			if err != nil {
				return fmt.Errorf("provider test failed: %w", err)
			}

			fmt.Println()
			fmt.Println(successStyle.Render("✓ Provider reachable") + dimStyle.Render(fmt.Sprintf(" (%.1fs)", time.Since(start).Seconds())))
			fmt.Printf("  Response: %s\n", completion.Text)
			fmt.Printf("  Tokens:   %d input, %d output\n", completion.Usage.InputTokens, completion.Usage.OutputTokens)
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "P", "Reply with a single short sentence confirming you are reachable.", "test prompt to send")

	return cmd
}
