// Package html parses markup fragments into trees of dom nodes.
//
// Parsing runs in two passes. MatchTags first pairs every opening tag with
// its closing tag across the whole input. A state machine then walks the
// input, creating an element through a dom.Factory for every opening tag and
// recursing into the range between the tag and its closing tag to build the
// children.
//
// The parser does not validate tag names, decode character entities or
// handle namespaces. Malformed input fails with a *SyntaxError; no partial
// tree is returned.
package html

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chrisuehlinger/tagtree/dom"
)

// DefaultMaxDepth is the nesting depth a Parser accepts unless configured otherwise.
const DefaultMaxDepth = 512

// Parser turns markup into nodes. A Parser holds no per-parse state and may
// be used from several goroutines at once.
type Parser struct {
	factory  dom.Factory
	maxDepth int
	logger   zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithFactory sets the factory used to create elements.
// The default is dom.DefaultFactory().
func WithFactory(f dom.Factory) Option {
	return func(p *Parser) {
		p.factory = f
	}
}

// WithMaxDepth bounds how deeply tags may nest. 0 removes the bound.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the logger parse events are written to.
// The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		factory:  dom.DefaultFactory(),
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxDepth < 0 {
		p.maxDepth = 0
	}
	return p
}

// Parse parses markup and returns its top-level nodes in order.
// Empty input yields an empty list.
func (p *Parser) Parse(markup string) (dom.NodeList, error) {
	matches, err := MatchTags(markup, p.maxDepth)
	if err != nil {
		p.logger.Warn().Err(err).Int("bytes", len(markup)).Msg("tag matching failed")
		return nil, err
	}
	p.logger.Debug().Int("bytes", len(markup)).Int("tags", matches.Len()).Msg("tags matched")

	b := &builder{
		src:      markup,
		matches:  matches,
		factory:  p.factory,
		maxDepth: p.maxDepth,
	}
	nodes, err := b.parseRange(0, len(markup), 0)
	if err != nil {
		p.logger.Warn().Err(err).Int("bytes", len(markup)).Msg("markup parsing failed")
		return nil, err
	}
	p.logger.Debug().Int("nodes", len(nodes)).Msg("markup parsed")

	return dom.NodeList(nodes), nil
}

// ParseOne parses markup that must contain exactly one top-level node and
// returns that node.
func (p *Parser) ParseOne(markup string) (*dom.Node, error) {
	nodes, err := p.Parse(markup)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNotSingleNode, len(nodes))
	}
	return nodes[0], nil
}

var defaultParser = NewParser()

// Parse parses markup with the default parser.
func Parse(markup string) (dom.NodeList, error) {
	return defaultParser.Parse(markup)
}

// ParseOne parses markup holding exactly one top-level node with the
// default parser.
func ParseOne(markup string) (*dom.Node, error) {
	return defaultParser.ParseOne(markup)
}
