package dom

import "strings"

// Matcher decides whether an element is selected by a query.
type Matcher func(*Element) bool

// QueryOptions bounds a tree search.
type QueryOptions struct {
	// MaxDepth limits how many levels below the starting node are searched.
	// 1 searches only the direct children; 0 searches the whole subtree.
	MaxDepth int
}

// Find returns the first element below root, in document order, for which
// match returns true, or nil.
func Find(root *Node, match Matcher, opts QueryOptions) *Element {
	var found *Element
	walkElements(root, opts.MaxDepth, 1, func(el *Element) bool {
		if match(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element below root, in document order, for which
// match returns true.
func FindAll(root *Node, match Matcher, opts QueryOptions) []*Element {
	var elements []*Element
	walkElements(root, opts.MaxDepth, 1, func(el *Element) bool {
		if match(el) {
			elements = append(elements, el)
		}
		return true
	})
	return elements
}

// walkElements visits the element descendants of node in pre-order until
// visit returns false. It reports whether the walk should continue.
func walkElements(node *Node, maxDepth, depth int, visit func(*Element) bool) bool {
	for _, child := range node.children {
		el := child.AsElement()
		if el == nil {
			continue
		}
		if !visit(el) {
			return false
		}
		if maxDepth == 0 || depth < maxDepth {
			if !walkElements(child, maxDepth, depth+1, visit) {
				return false
			}
		}
	}
	return true
}

// ByTagName matches elements by tag name, ignoring case. "*" matches all.
func ByTagName(tagName string) Matcher {
	tagName = strings.ToLower(tagName)
	return func(el *Element) bool {
		return tagName == "*" || el.LocalName() == tagName
	}
}

// ByID matches elements whose id attribute equals id.
func ByID(id string) Matcher {
	return ByAttributeValue("id", id)
}

// ByName matches elements whose name attribute equals name.
func ByName(name string) Matcher {
	return ByAttributeValue("name", name)
}

// ByClass matches elements that carry every one of the given classes.
func ByClass(classNames ...string) Matcher {
	return func(el *Element) bool {
		classList := el.ClassList()
		for _, class := range classNames {
			if !classList.Contains(class) {
				return false
			}
		}
		return true
	}
}

// ByAttribute matches elements that have the attribute, with or without a value.
func ByAttribute(name string) Matcher {
	return func(el *Element) bool {
		return el.HasAttribute(name)
	}
}

// ByAttributeValue matches elements whose attribute equals value.
func ByAttributeValue(name, value string) Matcher {
	return func(el *Element) bool {
		v, ok := el.LookupAttribute(name)
		return ok && v == value
	}
}

// ByKind matches elements of the given variant.
func ByKind(kind Kind) Matcher {
	return func(el *Element) bool {
		return el.Kind() == kind
	}
}

// Find returns the first descendant element selected by match.
func (e *Element) Find(match Matcher) *Element {
	return Find(e.AsNode(), match, QueryOptions{})
}

// FindAll returns every descendant element selected by match.
func (e *Element) FindAll(match Matcher) []*Element {
	return FindAll(e.AsNode(), match, QueryOptions{})
}

// FindByID returns the descendant with the given id, or nil.
func (e *Element) FindByID(id string) *Element {
	return e.Find(ByID(id))
}

// FindByName returns the first descendant with the given name attribute.
func (e *Element) FindByName(name string) *Element {
	return e.Find(ByName(name))
}

// FindByTagName returns the first descendant with the given tag name.
func (e *Element) FindByTagName(tagName string) *Element {
	return e.Find(ByTagName(tagName))
}

// FindAllByTagName returns the descendants with the given tag name.
func (e *Element) FindAllByTagName(tagName string) []*Element {
	return e.FindAll(ByTagName(tagName))
}

// FindByClass returns the first descendant carrying all of the classes.
func (e *Element) FindByClass(classNames ...string) *Element {
	return e.Find(ByClass(classNames...))
}

// FindAllByClass returns the descendants carrying all of the classes.
func (e *Element) FindAllByClass(classNames ...string) []*Element {
	return e.FindAll(ByClass(classNames...))
}

// FindByAttribute returns the first descendant whose attribute equals value.
func (e *Element) FindByAttribute(name, value string) *Element {
	return e.Find(ByAttributeValue(name, value))
}

// FindAllByAttribute returns the descendants whose attribute equals value.
func (e *Element) FindAllByAttribute(name, value string) []*Element {
	return e.FindAll(ByAttributeValue(name, value))
}

// FindAllByKind returns the descendants of the given variant.
func (e *Element) FindAllByKind(kind Kind) []*Element {
	return e.FindAll(ByKind(kind))
}

// Find searches the nodes of the list and their descendants, in document
// order, and returns the first element selected by match.
func (nl NodeList) Find(match Matcher) *Element {
	for _, n := range nl {
		el := n.AsElement()
		if el == nil {
			continue
		}
		if match(el) {
			return el
		}
		if found := el.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll searches the nodes of the list and their descendants, in document
// order, and returns every element selected by match.
func (nl NodeList) FindAll(match Matcher) []*Element {
	var elements []*Element
	for _, n := range nl {
		el := n.AsElement()
		if el == nil {
			continue
		}
		if match(el) {
			elements = append(elements, el)
		}
		elements = append(elements, el.FindAll(match)...)
	}
	return elements
}
