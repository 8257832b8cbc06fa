package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the clubos-pitch command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clubos-pitch",
		Short: "Interactive pitch and demo for the Metaverse Club OS",
		Long: "clubos-pitch walks a club owner through the product: a guided feature\n" +
			"tour with launch pricing, and a live role-gated demo dashboard.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "annotate logs with source positions")

	root.AddCommand(
		TourCmd(),
		DemoCmd(),
		ConfigCmd(),
		VersionCmd(),
	)

	return root
}
