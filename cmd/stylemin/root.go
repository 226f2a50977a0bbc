package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mforney/stylemin/internal/adapters/command"
	"github.com/mforney/stylemin/internal/adapters/logging"
	"github.com/mforney/stylemin/internal/app"
	"github.com/mforney/stylemin/internal/clangformat"
	"github.com/mforney/stylemin/internal/domain/style"
	"github.com/mforney/stylemin/internal/ports"
)

var (
	// Global flags
	clangFormatBin string
	verbose        bool
	jsonLog        bool
)

var (
	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}).
		Bold(true)
	suggestionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"})
)

var rootCmd = &cobra.Command{
	Use:   "stylemin <config-file>",
	Short: "Minify a .clang-format file against the builtin presets",
	Long: `Stylemin rewrites a .clang-format file as the smallest override set on
top of the closest builtin preset.

It asks clang-format to dump the resolved configuration of the file and
of every builtin preset, diffs them, and prints a document that sets
BasedOnStyle to the preset with the fewest differing options plus only
those options. Diagnostics go to stderr; the document goes to stdout.

Examples:
  stylemin .clang-format                       # Minify against PATH clang-format
  stylemin --clang-format clang-format-19 x    # Use a specific binary
  stylemin -v .clang-format > minimal.yaml     # Keep the result`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.Flags().StringVar(&clangFormatBin, "clang-format", clangformat.DefaultBinary,
		"name or path of the clang-format binary")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "log-json", false, "log diagnostics as JSON")

	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(
		logging.WithOutput(cmd.ErrOrStderr()),
		logging.WithLevel(level),
		logging.WithJSON(jsonLog),
	)

	dumper := clangformat.NewDumper(clangFormatBin, command.NewRealRunner())
	service := app.NewService(dumper, logger)

	doc, err := service.Minify(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out, err := doc.Render()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var userErr *style.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += "\n\n" + suggestionStyle.Render("Suggestion: "+userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), formatError(err))
}
