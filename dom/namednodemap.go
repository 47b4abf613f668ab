package dom

// NamedNodeMap is the ordered attribute map of an Element. Names are unique
// and keep the position of their first insertion.
type NamedNodeMap struct {
	attrs []*Attr
}

// newNamedNodeMap creates an empty NamedNodeMap.
func newNamedNodeMap() *NamedNodeMap {
	return &NamedNodeMap{
		attrs: make([]*Attr, 0),
	}
}

// Length returns the number of attributes in the map.
func (nm *NamedNodeMap) Length() int {
	return len(nm.attrs)
}

// Item returns the attribute at the given index, or nil if out of bounds.
func (nm *NamedNodeMap) Item(index int) *Attr {
	if index < 0 || index >= len(nm.attrs) {
		return nil
	}
	return nm.attrs[index]
}

// GetNamedItem returns the attribute with the given name, or nil if not found.
func (nm *NamedNodeMap) GetNamedItem(name string) *Attr {
	for _, attr := range nm.attrs {
		if attr.name == name {
			return attr
		}
	}
	return nil
}

// setAttr adds attr or replaces the attribute of the same name in place.
// Returns the replaced attribute if any.
func (nm *NamedNodeMap) setAttr(attr *Attr) *Attr {
	for i, existing := range nm.attrs {
		if existing.name == attr.name {
			nm.attrs[i] = attr
			return existing
		}
	}
	nm.attrs = append(nm.attrs, attr)
	return nil
}

// SetValue sets the value of the attribute with the given name.
// If the attribute doesn't exist, it is created.
func (nm *NamedNodeMap) SetValue(name, value string) {
	nm.setAttr(NewAttr(name, value))
}

// SetBare sets an attribute without a value.
func (nm *NamedNodeMap) SetBare(name string) {
	nm.setAttr(&Attr{name: name, bare: true})
}

// GetValue returns the value of the attribute with the given name, or empty string.
func (nm *NamedNodeMap) GetValue(name string) string {
	if attr := nm.GetNamedItem(name); attr != nil {
		return attr.value
	}
	return ""
}

// Remove removes the attribute with the given name and reports whether it existed.
func (nm *NamedNodeMap) Remove(name string) bool {
	for i, attr := range nm.attrs {
		if attr.name == name {
			nm.attrs = append(nm.attrs[:i], nm.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Has returns true if an attribute with the given name exists.
func (nm *NamedNodeMap) Has(name string) bool {
	return nm.GetNamedItem(name) != nil
}

// Names returns a slice of all attribute names in insertion order.
func (nm *NamedNodeMap) Names() []string {
	names := make([]string, len(nm.attrs))
	for i, attr := range nm.attrs {
		names[i] = attr.name
	}
	return names
}

// clone creates a deep copy of this NamedNodeMap.
func (nm *NamedNodeMap) clone() *NamedNodeMap {
	c := &NamedNodeMap{attrs: make([]*Attr, len(nm.attrs))}
	for i, attr := range nm.attrs {
		copied := *attr
		c.attrs[i] = &copied
	}
	return c
}
