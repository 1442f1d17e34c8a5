package records

// Attr is a single named attribute of a Node.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a record document. Attributes keep their insertion
// order. Text is the character content of the element, for elements with
// children it is stored trimmed.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// NewNode creates an empty element.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// SetAttr sets the attribute name, replacing an existing value.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the attribute name and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttr deletes the attribute name if present.
func (n *Node) RemoveAttr(name string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// AddChild appends a new empty child element and returns it.
func (n *Node) AddChild(name string) *Node {
	child := NewNode(name)
	n.Children = append(n.Children, child)
	return child
}

// ChildrenNamed returns the direct children called name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var result []*Node
	for _, c := range n.Children {
		if c.Name == name {
			result = append(result, c)
		}
	}
	return result
}
