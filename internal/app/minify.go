// Package app wires the clang-format dumper and the style domain into
// the minification use case.
package app

import (
	"context"
	"os"

	"github.com/mforney/stylemin/internal/domain/style"
	"github.com/mforney/stylemin/internal/ports"
)

// ConfigDumper loads resolved style configurations, normally by shelling
// out to clang-format.
type ConfigDumper interface {
	DumpPreset(ctx context.Context, name string) (style.Config, error)
	DumpFile(ctx context.Context, path string) (style.Config, error)
}

// Service minifies a configuration file against the preset catalog.
type Service struct {
	dumper  ConfigDumper
	logger  ports.Logger
	presets []string
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithPresets overrides the preset catalog. Used in tests.
func WithPresets(names []string) ServiceOption {
	return func(s *Service) {
		s.presets = names
	}
}

// NewService creates a minification service.
func NewService(dumper ConfigDumper, logger ports.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		dumper:  dumper,
		logger:  logger,
		presets: style.Presets,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Minify resolves the target file's configuration, diffs it against every
// loadable preset, and returns the document based on the closest one.
//
// Presets the tool rejects are skipped with a warning. A target that
// cannot be resolved is fatal: diffing against nothing would emit a
// misleading full-override document.
func (s *Service) Minify(ctx context.Context, path string) (*style.Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &style.UserError{
			Code:       style.ErrCodeInputNotFound,
			Message:    "configuration file not found",
			Context:    path,
			Suggestion: "pass the path to an existing .clang-format file",
			Underlying: err,
		}
	}

	loaded := make(map[string]style.Config, len(s.presets))
	for _, name := range s.presets {
		cfg, err := s.dumper.DumpPreset(ctx, name)
		if err != nil {
			s.logger.Warn(ctx, "skipping preset", ports.F("preset", name), ports.F("reason", err))
			continue
		}
		s.logger.Debug(ctx, "loaded preset", ports.F("preset", name), ports.F("options", len(cfg)))
		loaded[name] = cfg
	}
	if len(loaded) == 0 {
		return nil, &style.UserError{
			Code:       style.ErrCodeNoPresets,
			Message:    "no builtin preset could be loaded",
			Suggestion: "verify that the clang-format binary runs (see --clang-format)",
		}
	}

	target, err := s.dumper.DumpFile(ctx, path)
	if err != nil {
		return nil, err
	}

	diffs := make(map[string][]string, len(loaded))
	for _, name := range s.presets {
		cfg, ok := loaded[name]
		if !ok {
			continue
		}
		diffs[name] = style.Diff(cfg, target)
		s.logger.Debug(ctx, "diffed preset",
			ports.F("preset", name), ports.F("differing", len(diffs[name])))
	}

	name, diffKeys, _ := style.Closest(s.presets, diffs)
	s.logger.Info(ctx, "selected base preset",
		ports.F("preset", name), ports.F("overrides", len(diffKeys)))

	return &style.Document{
		BasedOn:   name,
		Overrides: target.Subset(diffKeys),
	}, nil
}
