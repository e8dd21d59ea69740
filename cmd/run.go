package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mathsinbites/bitesmith/internal/app"
	"github.com/mathsinbites/bitesmith/internal/completion"
	"github.com/mathsinbites/bitesmith/internal/forge"
	"github.com/mathsinbites/bitesmith/internal/genclient"
	"github.com/mathsinbites/bitesmith/internal/ledger"
	"github.com/mathsinbites/bitesmith/internal/llm"
	"github.com/mathsinbites/bitesmith/internal/runner"
	"github.com/mathsinbites/bitesmith/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gen, backend, err := buildGenerator(ctx, st)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "generation backend: %s\n", backend)

	led := ledger.New()
	r := runner.New(st.Catalog(), gen, led, st.Events(), runner.DefaultConfig())

	return app.Run(app.Options{
		Catalog:    st.Catalog(),
		Controller: runner.NewController(r),
		Aggregator: completion.New(st.Catalog()),
		Ledger:     led,
	})
}

// buildGenerator picks the generation backend: the remote HTTP endpoint
// when BITESMITH_GEN_URL is set, otherwise an in-process forge backed
// by whichever model provider the environment configures.
func buildGenerator(ctx context.Context, st *store.Store) (runner.Generator, string, error) {
	genCfg := genclient.ConfigFromEnv()
	if genCfg.BaseURL != "" {
		client, err := genclient.New(genCfg)
		if err != nil {
			return nil, "", fmt.Errorf("configure remote endpoint: %w", err)
		}
		return client, "remote (" + genCfg.BaseURL + ")", nil
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, "", fmt.Errorf("no generation backend configured: set BITESMITH_GEN_URL for a remote endpoint, or an API key (ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY) for local generation")
		}
		llmCfg = discovered
	}

	provider, err := llm.NewProvider(ctx, llmCfg, st.Events())
	if err != nil {
		return nil, "", fmt.Errorf("configure model provider: %w", err)
	}
	return forge.New(st.Catalog(), provider, forge.DefaultConfig()), "local (" + llmCfg.Provider + ")", nil
}
