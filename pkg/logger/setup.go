package logger

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// SetupFromFlags builds a Logger from the root command's persistent log
// flags. TUI commands pass a discard writer so frames stay clean unless the
// user explicitly redirects logs.
func SetupFromFlags(cmd *cobra.Command, output io.Writer) (Logger, error) {
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	logSource, err := cmd.Flags().GetBool("log-source")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-source flag: %w", err)
	}
	return NewLogger(&Config{
		Level:      LogLevel(logLevel),
		Output:     output,
		JSON:       logJSON,
		AddSource:  logSource,
		TimeFormat: "15:04:05",
	}), nil
}
