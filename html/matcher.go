package html

import "sort"

// NoBody is the close offset recorded for a self-closing tag.
const NoBody = -1

// Match pairs the offset of the '<' opening a tag with the offset of the
// '<' of its closing tag, or NoBody for a self-closing tag.
type Match struct {
	Open  int
	Close int
}

// MatchTable holds the matches found in one piece of markup.
type MatchTable struct {
	closes  map[int]int
	entries []Match
}

// Len returns the number of matched tags.
func (t *MatchTable) Len() int {
	return len(t.entries)
}

// Close returns the close offset recorded for the tag opening at open.
// ok is false if no tag opens there.
func (t *MatchTable) Close(open int) (int, bool) {
	closeAt, ok := t.closes[open]
	return closeAt, ok
}

// Entries returns the matches ordered by opening offset.
func (t *MatchTable) Entries() []Match {
	entries := make([]Match, len(t.entries))
	copy(entries, t.entries)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Open < entries[j].Open
	})
	return entries
}

func (t *MatchTable) record(open, closeAt int) {
	t.closes[open] = closeAt
	t.entries = append(t.entries, Match{Open: open, Close: closeAt})
}

// isTagStart reports whether src[i] is a '<' that opens or closes a tag.
// "<!" starts a comment or declaration and "<-" is text.
func isTagStart(src string, i, end int) bool {
	return src[i] == '<' && i < end-1 && src[i+1] != '!' && src[i+1] != '-'
}

// isSelfClosingEnd reports whether src[i:] begins with "/>".
func isSelfClosingEnd(src string, i, end int) bool {
	return src[i] == '/' && i < end-1 && src[i+1] == '>'
}

// MatchTags pairs every opening tag in src with its closing tag in a single
// scan. "</" closes the innermost pending tag and "/>" closes it without a
// body. Tag names are not compared.
//
// Comments and declarations are not skipped, so a '<' or "/>" inside one,
// or inside an attribute value, takes part in the matching.
//
// maxDepth bounds the number of pending tags; 0 means no bound.
func MatchTags(src string, maxDepth int) (*MatchTable, error) {
	table := &MatchTable{closes: make(map[int]int)}
	var stack []int
	end := len(src)

	pop := func(at int) (int, error) {
		if len(stack) == 0 {
			return 0, newSyntaxError(ErrUnbalancedMarkup, at)
		}
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return open, nil
	}

	for i := 0; i < end; i++ {
		switch {
		case isTagStart(src, i, end):
			if src[i+1] == '/' {
				open, err := pop(i)
				if err != nil {
					return nil, err
				}
				table.record(open, i)
				i++
				continue
			}
			if maxDepth > 0 && len(stack) >= maxDepth {
				return nil, newSyntaxError(ErrNestingTooDeep, i)
			}
			stack = append(stack, i)
		case isSelfClosingEnd(src, i, end):
			open, err := pop(i)
			if err != nil {
				return nil, err
			}
			table.record(open, NoBody)
			i++
		}
	}

	if len(stack) != 0 {
		return nil, newSyntaxError(ErrUnbalancedMarkup, stack[len(stack)-1])
	}

	return table, nil
}
