// Package helpers holds small CLI utilities shared by the commands.
package helpers

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isRunningInCI checks if we're running in a CI/CD environment
func isRunningInCI() bool {
	if os.Getenv("CI") != "" {
		return true
	}
	ciVars := []string{
		"JENKINS_HOME",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"BUILDKITE",
		"DRONE",
		"CONTINUOUS_INTEGRATION",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// IsInteractive reports whether stdout is a real terminal outside CI.
func IsInteractive() bool {
	if isRunningInCI() {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LogOutput picks the log destination for TUI commands: discard while
// stderr is the terminal (log lines would tear the frames), stderr once
// the user redirects it.
func LogOutput() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return io.Discard
	}
	return os.Stderr
}

// RequireInteractive returns an error when the TUI cannot run.
func RequireInteractive(command string) error {
	if IsInteractive() {
		return nil
	}
	return fmt.Errorf("%s needs an interactive terminal (stdout is not a TTY)", command)
}
