// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
)

// CommandResult represents the result of executing an external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records a command invocation.
type CommandCall struct {
	Dir     string
	Command string
	Args    []string
}

// CommandRunner executes external commands. A non-zero exit code is
// reported through CommandResult, not through the error return; the error
// is reserved for failures to start the process at all.
type CommandRunner interface {
	// Run executes a command in the current working directory.
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)

	// RunIn executes a command with the working directory set to dir.
	// An empty dir behaves like Run.
	RunIn(ctx context.Context, dir, command string, args ...string) (CommandResult, error)
}
