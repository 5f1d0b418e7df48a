package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankivoice/ankivoice/internal/config"
	"github.com/ankivoice/ankivoice/internal/llm"
	"github.com/ankivoice/ankivoice/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ankivoice",
	Short: "AI-assisted spaced repetition in the terminal",
	Long: "AnkiVoice — add study material as cards, let an LLM generate questions\n" +
		"and grade your free-form answers, and review on an SM-2 schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ANKIVOICE_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ANKIVOICE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, config.EnsureDir(p)
	}
	return config.DefaultDBPath()
}

// openStore opens the database selected by the command's flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildProvider assembles the LLM provider from configuration, with
// request events logged to the store.
func buildProvider(ctx context.Context, cfg *config.Config, s *store.Store) (llm.Provider, error) {
	lcfg := llm.Config{
		Provider:  cfg.LLM.Provider,
		Anthropic: providerConfig(cfg.LLM.Anthropic),
		OpenAI:    providerConfig(cfg.LLM.OpenAI),
		Gemini:    providerConfig(cfg.LLM.Gemini),
		Ollama:    providerConfig(cfg.LLM.Ollama),
		Retry:     llm.DefaultRetry(),
		Timeout:   cfg.LLM.Timeout,
	}
	if cfg.LLM.MaxAttempts > 0 {
		lcfg.Retry.MaxAttempts = cfg.LLM.MaxAttempts
	}
	if err := lcfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, lcfg, s.LLMEvents())
}

func providerConfig(p config.ProviderConfig) llm.ProviderConfig {
	return llm.ProviderConfig{
		APIKey:  p.APIKey,
		Model:   p.Model,
		BaseURL: p.BaseURL,
	}
}
