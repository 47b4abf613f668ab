package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Element represents an element in the tree.
// Element is defined over Node and provides element-specific properties and methods.
type Element Node

// Kind identifies which element variant the factory produced for a tag name.
type Kind uint8

const (
	// KindGeneric is a plain element carrying its tag name verbatim.
	KindGeneric Kind = iota
	// KindItalic is the variant created for <i>.
	KindItalic
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindItalic:
		return "italic"
	default:
		return "unknown"
	}
}

// NewElement creates a generic element with the given tag name.
// The name is kept as written; lookups against it are case-insensitive.
func NewElement(tagName string) *Element {
	return newElement(tagName, KindGeneric)
}

func newElement(tagName string, kind Kind) *Element {
	n := newNode(ElementNode, tagName)
	localName := strings.ToLower(tagName)
	n.elementData = &elementData{
		tagName:   tagName,
		localName: localName,
		dataAtom:  atom.Lookup([]byte(localName)),
		kind:      kind,
	}
	return (*Element)(n)
}

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode.
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// TagName returns the tag name as it was written.
func (e *Element) TagName() string {
	return e.data().tagName
}

// LocalName returns the lowercase tag name.
func (e *Element) LocalName() string {
	return e.data().localName
}

// DataAtom returns the atom for known HTML tag names, or zero.
func (e *Element) DataAtom() atom.Atom {
	return e.data().dataAtom
}

// Kind returns the element variant.
func (e *Element) Kind() Kind {
	return e.data().kind
}

func (e *Element) data() *elementData {
	n := e.AsNode()
	if n.elementData == nil {
		n.elementData = &elementData{
			tagName:   n.nodeName,
			localName: strings.ToLower(n.nodeName),
		}
	}
	return n.elementData
}

// SelfClosing reports whether the element was written without a body
// (<br/>). A self-closing element never has children.
func (e *Element) SelfClosing() bool {
	return e.data().selfClosing
}

// SetSelfClosing marks the element as having no body.
// It fails if the element already has children.
func (e *Element) SetSelfClosing(selfClosing bool) error {
	if selfClosing && e.AsNode().HasChildNodes() {
		return ErrHierarchyRequest("<" + e.TagName() + "> has children and cannot be self-closing")
	}
	e.data().selfClosing = selfClosing
	return nil
}

// Attributes returns the ordered attribute map.
// The class attribute is not part of it; see ClassList.
func (e *Element) Attributes() *NamedNodeMap {
	d := e.data()
	if d.attributes == nil {
		d.attributes = newNamedNodeMap()
	}
	return d.attributes
}

// ClassList returns the class set of the element.
func (e *Element) ClassList() *DOMTokenList {
	d := e.data()
	if d.classList == nil {
		d.classList = newDOMTokenList()
	}
	return d.classList
}

// GetAttribute returns the value of the attribute with the given name, or
// the empty string. Names are matched case-insensitively.
func (e *Element) GetAttribute(name string) string {
	value, _ := e.LookupAttribute(name)
	return value
}

// LookupAttribute returns the value of the attribute and whether it is set.
// A bare attribute (<input disabled>) is set with an empty value.
func (e *Element) LookupAttribute(name string) (string, bool) {
	attr := e.Attributes().GetNamedItem(strings.ToLower(name))
	if attr == nil {
		return "", false
	}
	return attr.value, true
}

// HasAttribute returns true if the element has the specified attribute.
func (e *Element) HasAttribute(name string) bool {
	return e.Attributes().Has(strings.ToLower(name))
}

// SetAttribute sets an attribute value, creating it if it doesn't exist.
// Setting "class" replaces the class set instead.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	if name == "class" {
		e.ClassList().SetValue(value)
		return
	}
	e.Attributes().SetValue(name, value)
}

// SetBareAttribute sets an attribute that has no value.
// A bare "class" empties the class set.
func (e *Element) SetBareAttribute(name string) {
	name = strings.ToLower(name)
	if name == "class" {
		e.ClassList().SetValue("")
		return
	}
	e.Attributes().SetBare(name)
}

// RemoveAttribute removes an attribute and reports whether it was present.
func (e *Element) RemoveAttribute(name string) bool {
	return e.Attributes().Remove(strings.ToLower(name))
}

// Id returns the id attribute value.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the id attribute value.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// Name returns the name attribute value.
func (e *Element) Name() string {
	return e.GetAttribute("name")
}

// SetName sets the name attribute value.
func (e *Element) SetName(name string) {
	e.SetAttribute("name", name)
}

// Value returns the value attribute value.
func (e *Element) Value() string {
	return e.GetAttribute("value")
}

// SetValue sets the value attribute value.
func (e *Element) SetValue(value string) {
	e.SetAttribute("value", value)
}

// ClassName returns the class set joined by spaces.
func (e *Element) ClassName() string {
	return e.ClassList().Value()
}

// SetClassName replaces the class set with the whitespace-separated names.
func (e *Element) SetClassName(className string) {
	e.ClassList().SetValue(className)
}

// Children returns the child nodes of the element.
func (e *Element) Children() NodeList {
	return e.AsNode().ChildNodes()
}

// ChildElements returns the element children, skipping text and comments.
func (e *Element) ChildElements() []*Element {
	return e.AsNode().ChildNodes().Elements()
}

// AppendChild adds a child node to the end of the element's children.
func (e *Element) AppendChild(child *Node) error {
	return e.AsNode().AppendChild(child)
}

// Append adds each of the given nodes as children. Strings become text nodes.
func (e *Element) Append(children ...any) error {
	for _, c := range children {
		var node *Node
		switch v := c.(type) {
		case string:
			node = NewText(v).AsNode()
		case *Node:
			node = v
		case *Element:
			node = v.AsNode()
		case *Text:
			node = v.AsNode()
		case *Comment:
			node = v.AsNode()
		case NodeList:
			if err := e.AsNode().AppendChildren(v...); err != nil {
				return err
			}
			continue
		default:
			return ErrHierarchyRequest("unsupported child value")
		}
		if err := e.AppendChild(node); err != nil {
			return err
		}
	}
	return nil
}

// TextContent returns the text content of the element.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}
