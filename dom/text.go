package dom

// Text represents a run of character data outside any tag markup.
type Text Node

// NewText creates a text node with the given data.
func NewText(data string) *Text {
	n := newNode(TextNode, "#text")
	n.nodeValue = data
	return (*Text)(n)
}

// AsNode returns the underlying Node.
func (t *Text) AsNode() *Node {
	return (*Node)(t)
}

// NodeType returns TextNode.
func (t *Text) NodeType() NodeType {
	return TextNode
}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the text content.
func (t *Text) Data() string {
	return t.AsNode().nodeValue
}

// Length returns the length of the text content in bytes.
func (t *Text) Length() int {
	return len(t.Data())
}
