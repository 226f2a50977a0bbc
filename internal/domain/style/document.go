package style

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a minimized .clang-format configuration: a base preset plus
// the overrides that reproduce the target's resolved style.
type Document struct {
	BasedOn   string
	Overrides Config
}

// Render serializes the document. The header fixes the base preset and
// the language; overrides follow in sorted key order.
func (d *Document) Render() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "---\nBasedOnStyle: %s\n---\nLanguage: Cpp\n", d.BasedOn)

	if len(d.Overrides) > 0 {
		b.WriteString("\n")

		keys := d.Overrides.Keys()
		sort.Strings(keys)

		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			value, err := valueNode(d.Overrides[k])
			if err != nil {
				return "", fmt.Errorf("render override %s: %w", k, err)
			}
			mapping.Content = append(mapping.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				value,
			)
		}

		data, err := yaml.Marshal(mapping)
		if err != nil {
			return "", fmt.Errorf("render overrides: %w", err)
		}
		b.Write(data)
	}

	b.WriteString("...\n")
	return b.String(), nil
}

// valueNode re-parses a stringified option value so the encoder applies
// proper quoting. Flattened collections (flow YAML, always brace or
// bracket prefixed) are restored as nodes; everything else stays a
// scalar, quoted when the raw text would not survive a round trip.
func valueNode(v string) (*yaml.Node, error) {
	trimmed := strings.TrimSpace(v)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(v), &doc); err != nil {
			return nil, err
		}
		if len(doc.Content) > 0 {
			return doc.Content[0], nil
		}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(v), &doc); err == nil &&
		len(doc.Content) > 0 && doc.Content[0].Kind == yaml.ScalarNode {
		return doc.Content[0], nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.SingleQuotedStyle, Value: v}, nil
}
