package records

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ValentinKolb/prefsync/lib/codec"
	"gopkg.in/yaml.v3"
)

const (
	yamlTextKey     = "$text"
	yamlChildrenKey = "$children"
)

// NewYAMLDocumentSerializer creates a serializer writing every node as a
// mapping with a single key, the node name. A node with children only maps to
// the list of its children, any other node to a mapping of its attributes in
// order plus the reserved keys "$text" and "$children":
//
//	records:
//	  - Task:
//	      title: Buy milk
//	      due: "2024-05-01"
func NewYAMLDocumentSerializer() IDocumentSerializer {
	return &yamlDocumentSerializerImpl{}
}

// yamlDocumentSerializerImpl implements the IDocumentSerializer interface using yaml.v3 nodes
type yamlDocumentSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see records.IDocumentSerializer)
// --------------------------------------------------------------------------

func (y yamlDocumentSerializerImpl) Format() codec.Format {
	return codec.FormatYAML
}

func (y yamlDocumentSerializerImpl) Serialize(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(encodeYAMLNode(root)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y yamlDocumentSerializerImpl) Deserialize(b []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("document is empty")
	}
	return decodeYAMLNode(doc.Content[0])
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func encodeYAMLNode(n *Node) *yaml.Node {
	var body *yaml.Node

	if len(n.Attrs) == 0 && n.Text == "" {
		body = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range n.Children {
			body.Content = append(body.Content, encodeYAMLNode(c))
		}
	} else {
		body = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, a := range n.Attrs {
			body.Content = append(body.Content, yamlString(a.Name), yamlString(a.Value))
		}
		if n.Text != "" {
			body.Content = append(body.Content, yamlString(yamlTextKey), yamlString(n.Text))
		}
		if len(n.Children) > 0 {
			children := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, c := range n.Children {
				children.Content = append(children.Content, encodeYAMLNode(c))
			}
			body.Content = append(body.Content, yamlString(yamlChildrenKey), children)
		}
	}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{yamlString(n.Name), body},
	}
}

func resolveAlias(y *yaml.Node) *yaml.Node {
	for y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}
	return y
}

func decodeYAMLNode(y *yaml.Node) (*Node, error) {
	y = resolveAlias(y)
	if y.Kind != yaml.MappingNode || len(y.Content) != 2 {
		return nil, fmt.Errorf("line %d: expected a mapping with a single element name", y.Line)
	}

	key := resolveAlias(y.Content[0])
	if key.Kind != yaml.ScalarNode || key.Value == "" {
		return nil, fmt.Errorf("line %d: invalid element name", key.Line)
	}
	n := NewNode(key.Value)

	body := resolveAlias(y.Content[1])
	switch body.Kind {
	case yaml.ScalarNode:
		if body.Tag != "!!null" {
			n.Text = body.Value
		}

	case yaml.SequenceNode:
		if err := decodeYAMLChildren(n, body); err != nil {
			return nil, err
		}

	case yaml.MappingNode:
		for i := 0; i+1 < len(body.Content); i += 2 {
			k, v := resolveAlias(body.Content[i]), resolveAlias(body.Content[i+1])
			switch {
			case k.Value == yamlChildrenKey && v.Kind == yaml.SequenceNode:
				if err := decodeYAMLChildren(n, v); err != nil {
					return nil, err
				}
			case v.Kind != yaml.ScalarNode:
				return nil, fmt.Errorf("line %d: attribute %s of %s must be a scalar", v.Line, k.Value, n.Name)
			case k.Value == yamlTextKey:
				n.Text = v.Value
			case v.Tag == "!!null":
				n.Attrs = append(n.Attrs, Attr{Name: k.Value})
			default:
				n.Attrs = append(n.Attrs, Attr{Name: k.Value, Value: v.Value})
			}
		}

	default:
		return nil, fmt.Errorf("line %d: unexpected content of %s", body.Line, n.Name)
	}

	return n, nil
}

func decodeYAMLChildren(n *Node, seq *yaml.Node) error {
	for _, item := range seq.Content {
		c, err := decodeYAMLNode(item)
		if err != nil {
			return err
		}
		n.Children = append(n.Children, c)
	}
	return nil
}
