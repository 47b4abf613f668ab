package html

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedMarkup is reported when opening and closing tags do not
	// pair up: a tag is never closed, a closing tag has no opening tag, or a
	// tag with a body has no recorded closing tag.
	ErrUnbalancedMarkup = errors.New("unbalanced tags")

	// ErrUnbalancedAttributes is reported when a range ends while an
	// attribute name is still waiting for its value.
	ErrUnbalancedAttributes = errors.New("attribute name without value")

	// ErrUnterminatedQuote is reported when a quoted attribute value has no
	// closing quote before the end of its range.
	ErrUnterminatedQuote = errors.New("unterminated quoted attribute value")

	// ErrUnterminatedComment is reported when "<!--" is never followed by "-->".
	ErrUnterminatedComment = errors.New("unterminated comment")

	// ErrUnterminatedDoctype is reported when a "<!" declaration never reaches '>'.
	ErrUnterminatedDoctype = errors.New("unterminated declaration")

	// ErrUnterminatedTag is reported when a range ends inside a tag, before
	// its '>' or "/>".
	ErrUnterminatedTag = errors.New("unterminated tag")

	// ErrMissingTagName is reported for a tag with no name, such as "<>".
	ErrMissingTagName = errors.New("missing tag name")

	// ErrNestingTooDeep is reported when tags nest deeper than the parser's
	// configured maximum.
	ErrNestingTooDeep = errors.New("tags nested too deeply")

	// ErrNotSingleNode is returned by ParseOne when the markup does not
	// produce exactly one top-level node.
	ErrNotSingleNode = errors.New("markup does not contain exactly one top-level node")
)

// SyntaxError describes why markup could not be parsed and where.
// Use errors.Is with the Err* values of this package to tell the causes apart.
type SyntaxError struct {
	Offset int   // Offset is the byte offset in the markup the problem was detected at.
	Err    error // Err is one of the Err* values of this package.
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("html: %v at offset %d", e.Err, e.Offset)
}

func newSyntaxError(err error, offset int) *SyntaxError {
	return &SyntaxError{
		Offset: offset,
		Err:    err,
	}
}
