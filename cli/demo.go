package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/metaclub/clubos-pitch/cli/helpers"
	"github.com/metaclub/clubos-pitch/cli/tui/models"
	"github.com/metaclub/clubos-pitch/engine/rbac"
	"github.com/metaclub/clubos-pitch/pkg/logger"
	"github.com/metaclub/clubos-pitch/pkg/notify"
)

// DemoCmd runs the interactive role-gated dashboard demo.
func DemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explore the dashboard live, switching roles on the fly",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := helpers.RequireInteractive("demo"); err != nil {
				return err
			}
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			if role, err := cmd.Flags().GetString("role"); err == nil && role != "" {
				if _, ok := rbac.Parse(role); !ok {
					return fmt.Errorf("unknown role %q (try one of %v)", role, rbac.AllRoles)
				}
				cfg.Demo.DefaultRole = role
			}
			ctx := logger.ContextWithLogger(cmd.Context(), log)

			notifier := notify.New(cfg.Webhook.URL, cfg.Webhook.Timeout)
			defer notifier.Close()

			model := models.NewDashboardModel(ctx, cfg, notifier)
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("demo failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("role", "", "start the demo as this role")
	return cmd
}
