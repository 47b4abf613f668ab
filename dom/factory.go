package dom

import (
	"strings"
	"sync"
)

// Factory creates the element instance for a tag name. The parser calls it
// once per opening tag and does not care which variant it gets back.
type Factory interface {
	CreateElement(tagName string) *Element
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func(tagName string) *Element

// CreateElement calls f(tagName).
func (f FactoryFunc) CreateElement(tagName string) *Element {
	return f(tagName)
}

// Constructor builds a specialized element. It receives the tag name as
// written so the element can keep its original spelling.
type Constructor func(tagName string) *Element

// Registry is a Factory backed by a table of specialized constructors keyed
// by lowercase tag name. Names without an entry produce generic elements.
// A Registry is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns a registry with no specialized variants.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register installs ctor for tagName, replacing any previous entry.
func (r *Registry) Register(tagName string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[strings.ToLower(tagName)] = ctor
}

// CreateElement returns the specialized variant registered for tagName, or
// a generic element carrying tagName verbatim.
func (r *Registry) CreateElement(tagName string) *Element {
	r.mu.RLock()
	ctor, ok := r.constructors[strings.ToLower(tagName)]
	r.mu.RUnlock()
	if ok {
		return ctor(tagName)
	}
	return NewElement(tagName)
}

var (
	defaultFactoryOnce sync.Once
	defaultFactory     *Registry
)

// DefaultFactory returns the shared registry holding the built-in catalog.
func DefaultFactory() *Registry {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewRegistry()
		defaultFactory.Register("i", func(tagName string) *Element {
			return newElement(tagName, KindItalic)
		})
	})
	return defaultFactory
}

// NewItalic creates an <i> element holding the given children.
// Strings become text nodes.
func NewItalic(children ...any) (*Element, error) {
	el := newElement("i", KindItalic)
	if err := el.Append(children...); err != nil {
		return nil, err
	}
	return el, nil
}
