package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/danielmtz/paleta/internal/config"
	"github.com/danielmtz/paleta/internal/database"
	"github.com/danielmtz/paleta/internal/logging"
	"github.com/danielmtz/paleta/internal/scoring"
	"github.com/danielmtz/paleta/internal/tokens"
	"github.com/danielmtz/paleta/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "paleta",
	Short: "Paleta - a terminal accent color picker",
	Long: `Paleta is a terminal tool for picking an accent color against a brand
color and a design-token dataset, automatically (scored) or by hand.`,
	RunE: runPicker,
}

func Execute() error {
	return rootCmd.Execute()
}

func runPicker(cmd *cobra.Command, args []string) error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	db, err := database.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	source := tokenSource(cfg)
	scorer := scoring.NewContrastScorer()

	model := tui.InitialModel(ctx, cfg, source, scorer, repo)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		slog.Error("program exited with error", "error", err)
		return err
	}
	return nil
}

// tokenSource picks the dataset source: an explicitly configured file always
// wins (and its load failures surface in the picker); without one, a missing
// default file falls back to the bundled sample so a first run has swatches.
func tokenSource(cfg *config.Config) tokens.Source {
	path, err := cfg.TokensPath()
	if err != nil {
		slog.Error("cannot resolve tokens path", "error", err)
		return tokens.NewStaticSource(tokens.Sample())
	}

	if cfg.TokensFile == "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			slog.Info("no token dataset found, using bundled sample", "path", path)
			return tokens.NewStaticSource(tokens.Sample())
		}
	}

	return tokens.NewFileSource(path)
}
