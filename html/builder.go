package html

import (
	"strings"

	"github.com/chrisuehlinger/tagtree/dom"
)

// builder walks ranges of one source string and builds nodes. The source and
// the match table are shared by every level of the recursion; each call only
// owns its own range and accumulators.
type builder struct {
	src      string
	matches  *MatchTable
	factory  dom.Factory
	maxDepth int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// parseRange parses src[begin:end] into a sequence of sibling nodes.
// depth is the nesting depth of the range, 0 for the whole input.
func (b *builder) parseRange(begin, end, depth int) ([]*dom.Node, error) {
	src := b.src

	var (
		st      = stateText
		nodes   []*dom.Node
		temp    []byte
		pending []string // attribute names waiting for a value

		el       *dom.Element // element of the tag being read
		tagStart int          // offset of the '<' of the current construct
		closeAt  = NoBody     // close offset of the current tag

		valueStarted bool   // the current value has at least one character
		lastBare     string // bare attribute finalized by whitespace, may still get "= value"
	)

	flushText := func() {
		if len(temp) > 0 {
			nodes = append(nodes, dom.NewText(string(temp)).AsNode())
			temp = temp[:0]
		}
	}

	createElement := func() {
		if len(temp) > 0 {
			el = b.factory.CreateElement(string(temp))
			nodes = append(nodes, el.AsNode())
			temp = temp[:0]
		}
	}

	finishBare := func() {
		if len(temp) > 0 {
			lastBare = string(temp)
			el.SetBareAttribute(lastBare)
			temp = temp[:0]
		}
	}

	pos := begin
	for pos < end {
		c := src[pos]

		switch st {
		case stateText:
			if c != '<' || pos == end-1 || src[pos+1] == '-' {
				temp = append(temp, c)
				break
			}
			flushText()
			tagStart = pos
			if src[pos+1] == '!' {
				if pos < end-3 && src[pos+2] == '-' && src[pos+3] == '-' {
					pos += 3
					st = stateComment
				} else {
					st = stateDoctype
				}
				break
			}
			el = nil
			var ok bool
			if closeAt, ok = b.matches.Close(pos); !ok {
				closeAt = NoBody
			}
			st = stateTagName

		case stateDoctype:
			if c == '>' {
				st = stateText
			}

		case stateComment:
			if c == '-' && pos < end-2 && src[pos+1] == '-' && src[pos+2] == '>' {
				if comment := strings.TrimSpace(string(temp)); comment != "" {
					nodes = append(nodes, dom.NewComment(comment).AsNode())
				}
				temp = temp[:0]
				pos += 2
				st = stateText
			} else {
				temp = append(temp, c)
			}

		case stateTagName:
			switch {
			case isSpace(c) || c == '>':
				createElement()
				if el == nil {
					return nil, newSyntaxError(ErrMissingTagName, tagStart)
				}
				if c == '>' {
					st = stateTagBody
				} else {
					lastBare = ""
					st = stateTagAtt
				}
			case isSelfClosingEnd(src, pos, end):
				createElement()
				if el == nil {
					return nil, newSyntaxError(ErrMissingTagName, tagStart)
				}
				if err := el.SetSelfClosing(true); err != nil {
					return nil, err
				}
				pos++
				st = stateText
			default:
				temp = append(temp, c)
			}

		case stateTagAtt:
			switch {
			case c == '>' || isSelfClosingEnd(src, pos, end):
				finishBare()
				pos--
				st = stateTagName
			case isSpace(c) || c == '/':
				finishBare()
			case c == '=':
				if len(temp) == 0 && lastBare != "" {
					// "name = value": the name was already stored as bare.
					el.RemoveAttribute(lastBare)
					temp = append(temp, lastBare...)
				}
				if len(temp) > 0 {
					pending = append(pending, string(temp))
					temp = temp[:0]
					valueStarted = false
					st = stateTagAttValue
				}
				lastBare = ""
			default:
				lastBare = ""
				temp = append(temp, c)
			}

		case stateTagAttValue:
			switch {
			case c == '"' || c == '\'':
				pos--
				st = stateTagAttValueQuoted
			case isSpace(c) && !valueStarted:
			case isSpace(c) || c == '>' || isSelfClosingEnd(src, pos, end):
				name := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				// SetAttribute routes "class" into the class set.
				el.SetAttribute(name, string(temp))
				temp = temp[:0]
				pos--
				st = stateTagAtt
			default:
				valueStarted = true
				temp = append(temp, c)
			}

		case stateTagAttValueQuoted:
			quote := c
			n := strings.IndexByte(src[pos+1:end], quote)
			if n < 0 {
				return nil, newSyntaxError(ErrUnterminatedQuote, pos)
			}
			temp = append(temp, src[pos+1:pos+1+n]...)
			pos += 1 + n
			valueStarted = true
			st = stateTagAttValue

		case stateTagBody:
			if closeAt == NoBody || closeAt < pos || closeAt > end {
				return nil, newSyntaxError(ErrUnbalancedMarkup, tagStart)
			}
			if b.maxDepth > 0 && depth+1 > b.maxDepth {
				return nil, newSyntaxError(ErrNestingTooDeep, tagStart)
			}
			children, err := b.parseRange(pos, closeAt, depth+1)
			if err != nil {
				return nil, err
			}
			if err := el.AsNode().AppendChildren(children...); err != nil {
				return nil, err
			}
			pos = closeAt - 1
			st = stateTagClose

		case stateTagClose:
			if c == '>' {
				st = stateText
			}
		}

		pos++
	}

	if len(pending) != 0 {
		return nil, newSyntaxError(ErrUnbalancedAttributes, tagStart)
	}

	switch st {
	case stateText:
		flushText()
	case stateDoctype:
		return nil, newSyntaxError(ErrUnterminatedDoctype, tagStart)
	case stateComment:
		return nil, newSyntaxError(ErrUnterminatedComment, tagStart)
	case stateTagName, stateTagAtt, stateTagAttValue, stateTagAttValueQuoted, stateTagBody, stateTagClose:
		return nil, newSyntaxError(ErrUnterminatedTag, tagStart)
	}

	return nodes, nil
}
