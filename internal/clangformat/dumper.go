// Package clangformat shells out to the clang-format binary to dump
// resolved style configurations. It is the single integration seam with
// the external tool; everything above it works on style.Config values.
package clangformat

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mforney/stylemin/internal/domain/style"
	"github.com/mforney/stylemin/internal/ports"
)

// DefaultBinary is the conventional clang-format executable name,
// resolved through PATH.
const DefaultBinary = "clang-format"

// Dumper invokes clang-format to obtain resolved configurations.
type Dumper struct {
	binary string
	runner ports.CommandRunner
}

// NewDumper creates a Dumper for the given binary name or path.
func NewDumper(binary string, runner ports.CommandRunner) *Dumper {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Dumper{binary: binary, runner: runner}
}

// DumpPreset returns the canonical configuration of a builtin preset.
// A non-zero exit marks the preset as unsupported by the installed
// clang-format and is reported as ErrCodePresetRejected.
func (d *Dumper) DumpPreset(ctx context.Context, name string) (style.Config, error) {
	res, err := d.runner.Run(ctx, d.binary, "--style="+name, "--dump-config")
	if err != nil {
		return nil, d.wrapRunError(err)
	}
	if !res.Success() {
		return nil, &style.UserError{
			Code:       style.ErrCodePresetRejected,
			Message:    fmt.Sprintf("clang-format does not support preset %q", name),
			Underlying: errors.New(strings.TrimSpace(res.Stderr)),
		}
	}

	cfg, err := style.ParseDump([]byte(res.Stdout))
	if err != nil {
		return nil, &style.UserError{
			Code:       style.ErrCodeDumpParse,
			Message:    fmt.Sprintf("could not parse dumped configuration for preset %q", name),
			Underlying: err,
		}
	}
	return cfg, nil
}

// DumpFile returns the resolved configuration of a style file. The
// command runs with the working directory set to the file's directory:
// clang-format resolves file styles relative to the working directory
// and may consult ancestor configuration files.
func (d *Dumper) DumpFile(ctx context.Context, path string) (style.Config, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	res, err := d.runner.RunIn(ctx, dir, d.binary, "--style=file:"+base, "--dump-config")
	if err != nil {
		return nil, d.wrapRunError(err)
	}
	if !res.Success() {
		return nil, &style.UserError{
			Code:       style.ErrCodeTargetDump,
			Message:    "clang-format could not resolve the configuration file",
			Context:    path,
			Suggestion: "check that the file is valid YAML accepted by clang-format",
			Underlying: errors.New(strings.TrimSpace(res.Stderr)),
		}
	}

	cfg, err := style.ParseDump([]byte(res.Stdout))
	if err != nil {
		return nil, &style.UserError{
			Code:       style.ErrCodeDumpParse,
			Message:    "could not parse the dumped target configuration",
			Context:    path,
			Underlying: err,
		}
	}
	return cfg, nil
}

func (d *Dumper) wrapRunError(err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return &style.UserError{
			Code:       style.ErrCodeToolNotFound,
			Message:    fmt.Sprintf("clang-format binary %q not found", d.binary),
			Suggestion: "install clang-format or point --clang-format at the binary",
			Underlying: err,
		}
	}
	return fmt.Errorf("run %s: %w", d.binary, err)
}
