package yamlutil

import (
	"bytes"

	"go.yaml.in/yaml/v3"
)

func MarshalWithIndent(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)
	if err := encoder.Encode(v); err != nil {
		_ = encoder.Close()
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Resolve follows alias nodes to the node they reference.
func Resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// MappingValue returns the value node stored under key in a mapping node.
// Keys merged in with "<<" are consulted after the mapping's own keys, in
// merge order.
func MappingValue(mapping *yaml.Node, key string) *yaml.Node {
	mapping = Resolve(mapping)
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}

	var merged []*yaml.Node
	for idx := 0; idx+1 < len(mapping.Content); idx += 2 {
		keyNode := Resolve(mapping.Content[idx])
		if keyNode == nil || keyNode.Kind != yaml.ScalarNode {
			continue
		}
		if IsMergeKey(keyNode) {
			merged = append(merged, mapping.Content[idx+1])
			continue
		}
		if keyNode.Value == key {
			return mapping.Content[idx+1]
		}
	}

	for _, source := range merged {
		source = Resolve(source)
		if source == nil {
			continue
		}
		switch source.Kind {
		case yaml.MappingNode:
			if value := MappingValue(source, key); value != nil {
				return value
			}
		case yaml.SequenceNode:
			for _, item := range source.Content {
				if value := MappingValue(item, key); value != nil {
					return value
				}
			}
		}
	}
	return nil
}

// IsMergeKey reports whether node is an unquoted "<<" merge key.
func IsMergeKey(node *yaml.Node) bool {
	node = Resolve(node)
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// IsNull reports whether node is absent or an explicit null scalar.
func IsNull(node *yaml.Node) bool {
	node = Resolve(node)
	if node == nil {
		return true
	}
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
