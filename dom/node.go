package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Node represents a node in the tree. Element, Text and Comment are defined
// over Node and share its storage; the nodeType field decides which of them a
// given Node is. A Node owns its children and holds no reference back to its
// parent or siblings.
type Node struct {
	nodeType  NodeType
	nodeName  string
	nodeValue string
	children  []*Node

	// Only set for Element nodes.
	elementData *elementData
}

// elementData holds data specific to Element nodes.
type elementData struct {
	tagName     string
	localName   string
	dataAtom    atom.Atom
	kind        Kind
	attributes  *NamedNodeMap
	classList   *DOMTokenList
	selfClosing bool
}

// newNode creates a new node with the given type and name.
func newNode(nodeType NodeType, nodeName string) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node.
// For elements, this is the tag name as written in the source.
// For text nodes, this is "#text".
// For comments, this is "#comment".
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the character data of text and comment nodes, and the
// empty string for elements.
func (n *Node) NodeValue() string {
	return n.nodeValue
}

// AsElement returns the node as an Element, or nil if it is not one.
func (n *Node) AsElement() *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// AsText returns the node as a Text, or nil if it is not one.
func (n *Node) AsText() *Text {
	if n == nil || n.nodeType != TextNode {
		return nil
	}
	return (*Text)(n)
}

// AsComment returns the node as a Comment, or nil if it is not one.
func (n *Node) AsComment() *Comment {
	if n == nil || n.nodeType != CommentNode {
		return nil
	}
	return (*Comment)(n)
}

// ChildNodes returns the children of this node.
// The returned list is a copy; modifying it does not change the tree.
func (n *Node) ChildNodes() NodeList {
	list := make(NodeList, len(n.children))
	copy(list, n.children)
	return list
}

// HasChildNodes returns true if this node has any children.
func (n *Node) HasChildNodes() bool {
	return len(n.children) > 0
}

// FirstChild returns the first child of this node, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child of this node, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// AppendChild adds a child node to the end of this node's children.
func (n *Node) AppendChild(child *Node) error {
	return n.InsertBefore(child, len(n.children))
}

// AppendChildren appends each of the given nodes in order. It stops at the
// first node that cannot be inserted.
func (n *Node) AppendChildren(children ...*Node) error {
	for _, child := range children {
		if err := n.AppendChild(child); err != nil {
			return err
		}
	}
	return nil
}

// InsertBefore inserts child so that it ends up at the given index among
// this node's children. An index equal to the number of children appends.
func (n *Node) InsertBefore(child *Node, index int) error {
	if err := n.ensurePreInsertionValidity(child); err != nil {
		return err
	}
	if index < 0 || index > len(n.children) {
		return ErrIndexSize("child index out of range")
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	return nil
}

// ensurePreInsertionValidity checks that child may become a child of n.
func (n *Node) ensurePreInsertionValidity(child *Node) error {
	if child == nil {
		return ErrHierarchyRequest("cannot insert a nil node")
	}
	if n.nodeType != ElementNode {
		return ErrHierarchyRequest(n.nodeName + " nodes cannot have children")
	}
	if n.elementData != nil && n.elementData.selfClosing {
		return ErrHierarchyRequest("<" + n.nodeName + "> is self-closing and cannot have children")
	}
	if child == n || child.contains(n) {
		return ErrHierarchyRequest("the new child contains the parent")
	}
	return nil
}

// contains reports whether other is n or one of its descendants.
func (n *Node) contains(other *Node) bool {
	if n == other {
		return true
	}
	for _, c := range n.children {
		if c.contains(other) {
			return true
		}
	}
	return false
}

// RemoveChild removes a child node from this node's children.
func (n *Node) RemoveChild(child *Node) error {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return nil
		}
	}
	return ErrNotFound("the node to be removed is not a child of this node")
}

// RemoveAllChildren detaches every child of this node.
func (n *Node) RemoveAllChildren() {
	n.children = nil
}

// RemoveWhere removes every direct child for which pred returns true and
// returns the number of children removed.
func (n *Node) RemoveWhere(pred func(*Node) bool) int {
	kept := n.children[:0]
	removed := 0
	for _, c := range n.children {
		if pred(c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	return removed
}

// TextContent returns the text content of a node and its descendants.
// Comments do not contribute.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case TextNode, CommentNode:
		return n.nodeValue
	}
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for _, c := range n.children {
		switch c.nodeType {
		case TextNode:
			sb.WriteString(c.nodeValue)
		case ElementNode:
			c.collectTextContent(sb)
		}
	}
}

// CloneNode returns a copy of the node. If deep is true the children are
// cloned as well.
func (n *Node) CloneNode(deep bool) *Node {
	clone := &Node{
		nodeType:  n.nodeType,
		nodeName:  n.nodeName,
		nodeValue: n.nodeValue,
	}
	if ed := n.elementData; ed != nil {
		clone.elementData = &elementData{
			tagName:     ed.tagName,
			localName:   ed.localName,
			dataAtom:    ed.dataAtom,
			kind:        ed.kind,
			selfClosing: ed.selfClosing,
		}
		if ed.attributes != nil {
			clone.elementData.attributes = ed.attributes.clone()
		}
		if ed.classList != nil {
			clone.elementData.classList = ed.classList.clone()
		}
	}
	if deep {
		for _, c := range n.children {
			clone.children = append(clone.children, c.CloneNode(true))
		}
	}
	return clone
}
