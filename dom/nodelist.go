package dom

import "strings"

// NodeList is an ordered sequence of sibling nodes.
type NodeList []*Node

// Length returns the number of nodes in the list.
func (nl NodeList) Length() int {
	return len(nl)
}

// Item returns the node at the given index, or nil if out of bounds.
func (nl NodeList) Item(index int) *Node {
	if index < 0 || index >= len(nl) {
		return nil
	}
	return nl[index]
}

// Elements returns the element nodes of the list, in order.
func (nl NodeList) Elements() []*Element {
	var elements []*Element
	for _, n := range nl {
		if el := n.AsElement(); el != nil {
			elements = append(elements, el)
		}
	}
	return elements
}

// TextContent concatenates the text content of every node in the list.
func (nl NodeList) TextContent() string {
	var sb strings.Builder
	for _, n := range nl {
		switch n.nodeType {
		case TextNode:
			sb.WriteString(n.nodeValue)
		case ElementNode:
			n.collectTextContent(&sb)
		}
	}
	return sb.String()
}
