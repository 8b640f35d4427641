package props

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// UnmarshalYAML decodes a YAML mapping into an attribute bag, keeping the
// order of the mapping's keys. Nested mappings decode to nested bags,
// sequences to []any, scalars to their natural Go type.
func (p *Props) UnmarshalYAML(node *yaml.Node) error {
	bag, err := bagFromNode(node)
	if err != nil {
		return err
	}
	*p = bag
	return nil
}

// FromYAML parses an attribute bag from a YAML document. An empty
// document results in an empty bag.
func FromYAML(data []byte) (Props, error) {
	var p Props
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("props: cannot decode YAML attribute bag: %w", err)
	}
	return p, nil
}

func bagFromNode(node *yaml.Node) (Props, error) {
	node = resolve(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("props: expected a mapping at line %d, have %s", node.Line, kindName(node.Kind))
	}
	p := make(Props, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		var key string
		if err := k.Decode(&key); err != nil {
			return nil, fmt.Errorf("props: key at line %d: %w", k.Line, err)
		}
		value, err := valueFromNode(v)
		if err != nil {
			return nil, err
		}
		p.Set(key, value)
	}
	tracer().Debugf("decoded attribute bag with %d entries", len(p))
	return p, nil
}

func valueFromNode(node *yaml.Node) (any, error) {
	node = resolve(node)
	switch node.Kind {
	case yaml.MappingNode:
		return bagFromNode(node)
	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, ch := range node.Content {
			v, err := valueFromNode(ch)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("props: value at line %d: %w", node.Line, err)
	}
	return v, nil
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && (node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode) {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
		} else if len(node.Content) > 0 {
			node = node.Content[0]
		} else {
			break
		}
	}
	return node
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return fmt.Sprintf("kind %d", k)
}
