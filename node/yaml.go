package node

import (
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// FromYAML parses YAML (or JSON, which the YAML parser accepts) into a
// tree. Member order follows the source document.
func FromYAML(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("node: failed to parse document: %w", err)
	}
	return fromYAMLNode(&root)
}

// ToYAML serializes the tree as YAML, preserving member order.
func (n *Node) ToYAML() ([]byte, error) {
	yn, err := n.toYAMLNode()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yn)
}

func fromYAMLNode(yn *yaml.Node) (*Node, error) {
	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(yn.Content[0])

	case yaml.AliasNode:
		return fromYAMLNode(yn.Alias)

	case yaml.MappingNode:
		obj := Object()
		for i := 0; i+1 < len(yn.Content); i += 2 {
			key, err := fromYAMLNode(yn.Content[i])
			if err != nil {
				return nil, err
			}
			value, err := fromYAMLNode(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			// Non-string keys are coerced; JSON-origin documents never hit this.
			if key.Kind != KindString {
				key = String(yn.Content[i].Value)
			}
			obj.Members = append(obj.Members, Member{Key: key, Value: value})
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := Array()
		for _, item := range yn.Content {
			child, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, child)
		}
		return arr, nil

	case yaml.ScalarNode:
		return fromYAMLScalar(yn)

	default:
		return nil, fmt.Errorf("node: unsupported YAML node kind %d", yn.Kind)
	}
}

func fromYAMLScalar(yn *yaml.Node) (*Node, error) {
	switch yn.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(yn.Value)
		if err != nil {
			return nil, fmt.Errorf("node: invalid boolean %q: %w", yn.Value, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(yn.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("node: invalid number %q: %w", yn.Value, err)
		}
		return Number(f), nil
	default:
		return String(yn.Value), nil
	}
}

func (n *Node) toYAMLNode() (*yaml.Node, error) {
	switch n.Kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBoolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.Bool)}, nil
	case KindNumber:
		if n.Number == float64(int64(n.Number)) {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(n.Number), 10)}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(n.Number, 'g', -1, 64)}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Str}, nil
	case KindArray:
		yn := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items {
			child, err := item.toYAMLNode()
			if err != nil {
				return nil, err
			}
			yn.Content = append(yn.Content, child)
		}
		return yn, nil
	case KindObject:
		yn := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range n.Members {
			key, err := m.Key.toYAMLNode()
			if err != nil {
				return nil, err
			}
			value, err := m.Value.toYAMLNode()
			if err != nil {
				return nil, err
			}
			yn.Content = append(yn.Content, key, value)
		}
		return yn, nil
	default:
		return nil, fmt.Errorf("node: unsupported kind %d", n.Kind)
	}
}
