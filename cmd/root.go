// Package cmd implements the webforge command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/webforge-ai/webforge/internal/config"
	"github.com/webforge-ai/webforge/internal/crew"
	"github.com/webforge-ai/webforge/internal/provider"
	"github.com/webforge-ai/webforge/internal/token"
)

var (
	cfgFile      string
	modelFlag    string
	providerFlag string
	outputFlag   string

	// Package-level version, set by Execute() for command banners.
	appVersion string
)

// Shared output styles.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	appVersion = version

	rootCmd := &cobra.Command{
		Use:   "webforge",
		Short: "Multi-agent web project generator",
		Long: "webforge runs a crew of specialized AI agents (project manager, analyst,\n" +
			"developers, QA, DevOps) that plan, design, and document a complete web\n" +
			"project, then writes the deliverables and boilerplate to disk.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default ~/.config/webforge/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "override model for every task")
	rootCmd.PersistentFlags().StringVarP(&providerFlag, "provider", "p", "", "override provider")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output directory for generated projects")

	// Subcommands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	rootCmd.AddCommand(newCheckConfigCmd())
	rootCmd.AddCommand(newTestLLMCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// initConfig loads configuration, applying CLI flag overrides.
func initConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if providerFlag != "" {
		cfg.Provider = providerFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if outputFlag != "" {
		cfg.OutputDir = outputFlag
	}

	return cfg
}

// providerBaseURLs maps well-known provider names to their base URLs.
// OpenAI uses the SDK default and is absent on purpose.
var providerBaseURLs = map[string]string{
	"github":   "https://models.inference.ai.azure.com",
	"deepseek": "https://api.deepseek.com",
	"openai":   "",
}

// buildProvider creates a Provider instance based on configuration.
func buildProvider(cfg *config.Config) (provider.Provider, error) {
	name := cfg.Provider
	pc := cfg.GetProviderConfig(name)

	apiKey := pc.APIKey
	if apiKey == "" {
		return nil, fmt.Errorf(
			"API key not configured for provider %q.\n"+
				"Set it via:\n"+
				"  - config file: providers.%s.api_key\n"+
				"  - environment: GITHUB_TOKEN / OPENAI_API_KEY / ANTHROPIC_API_KEY / LLM_API_KEY",
			name, name,
		)
	}

	// Determine model: CLI flag or config file > provider config > provider default
	model := cfg.Model
	if model == "" {
		model = pc.Model
	}

	if name == "anthropic" {
		return provider.NewAnthropicProvider(apiKey, model), nil
	}

	// All other providers use the OpenAI-compatible API.
	baseURL := pc.BaseURL
	if baseURL == "" {
		u, ok := providerBaseURLs[name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %q; set providers.%s.base_url in config", name, name)
		}
		baseURL = u
	}
	return provider.NewOpenAIProvider(apiKey, baseURL, model), nil
}

// tokenLimits builds the budget table from built-in defaults plus config
// overrides.
func tokenLimits(cfg *config.Config) *token.Limits {
	limits := token.DefaultLimits()
	for model, n := range cfg.Token.Limits {
		limits.Totals[model] = n
	}
	if cfg.Token.DefaultLimit > 0 {
		limits.DefaultTotal = cfg.Token.DefaultLimit
	}
	if cfg.Token.ContextRatio > 0 {
		limits.ContextRatio = cfg.Token.ContextRatio
	}
	if cfg.Token.ResponseRatio > 0 {
		limits.ResponseRatio = cfg.Token.ResponseRatio
	}
	return limits
}

// pricingOverrides converts config pricing entries to tracker pricing.
func pricingOverrides(cfg *config.Config) map[string]crew.ModelPricing {
	if len(cfg.CostPricing) == 0 {
		return nil
	}
	out := make(map[string]crew.ModelPricing, len(cfg.CostPricing))
	for model, e := range cfg.CostPricing {
		out[model] = crew.ModelPricing{
			InputPerMillion:  e.InputPerMillion,
			OutputPerMillion: e.OutputPerMillion,
		}
	}
	return out
}
