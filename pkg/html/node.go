package html

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <p>, etc.
	KindText                 // Plain text, escaped at render time
	KindRaw                  // Raw HTML passthrough (dangerous)
	KindDocument             // Document root, emits the DOCTYPE envelope
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindDocument:
		return "Document"
	default:
		return "Unknown"
	}
}

// Node is a single node in the element tree.
type Node struct {
	Kind     Kind        // Node type
	Tag      string      // Element tag name (e.g., "div")
	Attrs    *Attributes // Attributes, nil until first set
	Children []*Node     // Child nodes, in insertion order
	Text     string      // For KindText and KindRaw
}

// Element is anything that can render itself to an HTML string.
// It is implemented by *Node, *Container, and *Page.
type Element interface {
	// Tree returns the node subtree for this element.
	Tree() *Node
}

// Tree implements Element.
func (n *Node) Tree() *Node {
	return n
}

// SetAttribute sets an attribute on the node. Setting an existing key
// updates its value in place without moving its position.
func (n *Node) SetAttribute(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = NewAttributes()
	}
	n.Attrs.Set(key, value)
	return n
}

// Append adds a child node. Children are append-only and render in
// insertion order.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Render returns the node and all its descendants as an HTML string.
func (n *Node) Render() string {
	return Render(n)
}
