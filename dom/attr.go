package dom

// Attr represents an attribute of an Element.
type Attr struct {
	name  string
	value string
	bare  bool
}

// NewAttr creates a new Attr with the given name and value.
func NewAttr(name, value string) *Attr {
	return &Attr{
		name:  name,
		value: value,
	}
}

// Name returns the attribute name.
func (a *Attr) Name() string {
	return a.name
}

// Value returns the attribute value.
func (a *Attr) Value() string {
	return a.value
}

// Bare reports whether the attribute was written without a value.
func (a *Attr) Bare() bool {
	return a.bare
}
