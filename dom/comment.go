package dom

// Comment represents a comment node.
type Comment Node

// NewComment creates a comment node with the given data.
func NewComment(data string) *Comment {
	n := newNode(CommentNode, "#comment")
	n.nodeValue = data
	return (*Comment)(n)
}

// AsNode returns the underlying Node.
func (c *Comment) AsNode() *Node {
	return (*Node)(c)
}

// NodeType returns CommentNode.
func (c *Comment) NodeType() NodeType {
	return CommentNode
}

// NodeName returns "#comment".
func (c *Comment) NodeName() string {
	return "#comment"
}

// Data returns the comment content.
func (c *Comment) Data() string {
	return c.AsNode().nodeValue
}

// Length returns the length of the comment content in bytes.
func (c *Comment) Length() int {
	return len(c.Data())
}
