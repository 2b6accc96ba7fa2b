package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML serializes a value tree to YAML, preserving map key order.
// The tree is converted to yaml.Node mappings rather than Go maps because
// yaml.v3 sorts map keys but emits node content verbatim.
func MarshalYAML(v Value) ([]byte, error) {
	node, err := yamlNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func yamlNode(v Value) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("nil value in document")
	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(val)}, nil
	case Int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(val), 10)}, nil
	case Float:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("non-finite float %v cannot be serialized", float64(val))
		}
		s := strconv.FormatFloat(float64(val), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}, nil
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(val))}, nil
	case Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, elem := range val {
			child, err := yamlNode(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range val.keys {
			child, err := yamlNode(val.items[k])
			if err != nil {
				return nil, fmt.Errorf("value for key %q: %w", k, err)
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}
