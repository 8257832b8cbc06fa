package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/metaclub/clubos-pitch/cli/helpers"
	"github.com/metaclub/clubos-pitch/cli/tui/models"
	"github.com/metaclub/clubos-pitch/engine/offer"
	"github.com/metaclub/clubos-pitch/pkg/bus"
	"github.com/metaclub/clubos-pitch/pkg/config"
	"github.com/metaclub/clubos-pitch/pkg/logger"
	"github.com/metaclub/clubos-pitch/pkg/notify"
)

// TourCmd runs the guided pitch tour.
func TourCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tour",
		Short: "Walk through the feature tour with launch pricing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := helpers.RequireInteractive("tour"); err != nil {
				return err
			}
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			ctx := logger.ContextWithLogger(cmd.Context(), log)

			notifier := notify.New(cfg.Webhook.URL, cfg.Webhook.Timeout)
			defer notifier.Close()

			model := models.NewTourModel(ctx, cfg, bus.New(), notifier, offer.DefaultStore())
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("tour failed: %w", err)
			}
			return nil
		},
	}
}

// setup loads the configuration and builds the logger for a TUI command.
// Logs go to stderr only when it is redirected, so frames stay clean.
func setup(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log, err := logger.SetupFromFlags(cmd, helpers.LogOutput())
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
