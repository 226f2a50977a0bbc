// Package style holds the configuration model for clang-format styles:
// parsing dumped configurations, diffing them against the builtin presets,
// and rendering a minimized document.
package style

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the flat resolved configuration of a style: option name to
// stringified value. Values are compared as opaque strings; nested and
// list-valued options are flattened to single-line flow YAML. This loses
// type fidelity on purpose, a comparison between two dumps of the same
// tool is still exact.
type Config map[string]string

// ParseDump parses the YAML document emitted by `clang-format
// --dump-config` into a Config.
func ParseDump(data []byte) (Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dump: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Config{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse dump: expected a mapping at top level, got %v", root.Kind)
	}

	cfg := make(Config, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		value := root.Content[i+1]

		s, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("parse dump: option %s: %w", key.Value, err)
		}
		cfg[key.Value] = s
	}
	return cfg, nil
}

// Keys returns the option names in unspecified order.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// Subset returns a new Config holding only the given keys. Keys absent
// from c are skipped.
func (c Config) Subset(keys []string) Config {
	out := make(Config, len(keys))
	for _, k := range keys {
		if v, ok := c[k]; ok {
			out[k] = v
		}
	}
	return out
}

// stringify renders a value node as a deterministic single-line string.
// Scalars keep their literal text; mappings and sequences are re-encoded
// in flow style.
func stringify(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}

	setFlow(node)
	data, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func setFlow(node *yaml.Node) {
	if node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode {
		node.Style = yaml.FlowStyle
	}
	for _, child := range node.Content {
		setFlow(child)
	}
}
