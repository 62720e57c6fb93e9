package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/egfinancefx/exam/internal/app"
	"github.com/egfinancefx/exam/internal/config"
	"github.com/egfinancefx/exam/internal/feedback"
	"github.com/egfinancefx/exam/internal/llm"
	"github.com/egfinancefx/exam/internal/logging"
	"github.com/egfinancefx/exam/internal/quiz"
	"github.com/egfinancefx/exam/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	appCfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(appCfg.Log.Level, appCfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	ctx = logging.IntoContext(ctx, logger)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank, err := quiz.Bank()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	llmCfg, err := buildModelConfig(appCfg)
	if err != nil {
		return err
	}
	provider, err := llm.NewProvider(ctx, llmCfg, st.RequestLogRepo())
	if err != nil {
		return fmt.Errorf("configure model provider: %w", err)
	}

	return app.Run(app.Deps{
		Ctx:      ctx,
		Bank:     bank,
		Feedback: feedback.NewService(provider, llmCfg),
		Markers:  st.MarkerRepo(),
	})
}

// buildModelConfig merges env-discovered credentials with any explicit
// EXAM_PROVIDER / EXAM_MODEL / EXAM_TIMEOUT overrides.
func buildModelConfig(appCfg *config.App) (llm.Config, error) {
	cfg, ok := llm.DiscoverConfig()
	if !ok {
		if appCfg.Model.Provider != "mock" {
			return llm.Config{}, fmt.Errorf("no model API key found (set GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY)")
		}
		cfg = llm.DefaultConfig()
	}

	if appCfg.Model.Provider != "" {
		cfg.Provider = appCfg.Model.Provider
	}
	if appCfg.Model.Name != "" {
		switch cfg.Provider {
		case "gemini":
			cfg.Gemini.Model = appCfg.Model.Name
		case "anthropic":
			cfg.Anthropic.Model = appCfg.Model.Name
		case "openai":
			cfg.OpenAI.Model = appCfg.Model.Name
		}
	}
	if appCfg.Model.Timeout > 0 {
		cfg.Timeout = appCfg.Model.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return llm.Config{}, err
	}
	return cfg, nil
}
