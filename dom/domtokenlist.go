package dom

import (
	"fmt"
	"strings"
)

const asciiWhitespace = " \t\n\r\f"

// validateToken checks that a class token is non-empty and free of whitespace.
func validateToken(token string) error {
	if token == "" {
		return ErrSyntax("The token provided must not be empty.")
	}
	if strings.ContainsAny(token, asciiWhitespace) {
		return ErrInvalidCharacter(fmt.Sprintf("The token provided ('%s') contains HTML space characters, which are not valid in tokens.", token))
	}
	return nil
}

// DOMTokenList is an ordered set of class names. Duplicates are collapsed,
// the first occurrence keeps its position.
type DOMTokenList struct {
	tokens []string
}

func newDOMTokenList() *DOMTokenList {
	return &DOMTokenList{}
}

// Length returns the number of tokens.
func (dtl *DOMTokenList) Length() int {
	return len(dtl.tokens)
}

// Item returns the token at the given index, or empty string if out of bounds.
func (dtl *DOMTokenList) Item(index int) string {
	if index < 0 || index >= len(dtl.tokens) {
		return ""
	}
	return dtl.tokens[index]
}

// Contains returns true if the given token is in the list.
// Invalid tokens (empty or with whitespace) are never contained.
func (dtl *DOMTokenList) Contains(token string) bool {
	return dtl.indexOf(token) >= 0
}

func (dtl *DOMTokenList) indexOf(token string) int {
	for i, t := range dtl.tokens {
		if t == token {
			return i
		}
	}
	return -1
}

// Add adds one or more tokens to the list.
// Returns an error if any token is empty or contains whitespace; in that
// case the list is left unchanged.
func (dtl *DOMTokenList) Add(tokens ...string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	for _, token := range tokens {
		if !dtl.Contains(token) {
			dtl.tokens = append(dtl.tokens, token)
		}
	}
	return nil
}

// Remove removes one or more tokens from the list.
func (dtl *DOMTokenList) Remove(tokens ...string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	for _, token := range tokens {
		if i := dtl.indexOf(token); i >= 0 {
			dtl.tokens = append(dtl.tokens[:i], dtl.tokens[i+1:]...)
		}
	}
	return nil
}

// Toggle toggles the presence of a token.
// If force is provided, it forces add (true) or remove (false).
// Returns true if the token is present after the operation.
func (dtl *DOMTokenList) Toggle(token string, force ...bool) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}

	contains := dtl.Contains(token)
	want := !contains
	if len(force) > 0 {
		want = force[0]
	}

	switch {
	case want && !contains:
		dtl.tokens = append(dtl.tokens, token)
	case !want && contains:
		i := dtl.indexOf(token)
		dtl.tokens = append(dtl.tokens[:i], dtl.tokens[i+1:]...)
	}
	return want, nil
}

// Replace replaces oldToken with newToken in place.
// Returns true if oldToken was found. If newToken is already present the
// earlier of the two positions is kept.
func (dtl *DOMTokenList) Replace(oldToken, newToken string) (bool, error) {
	if oldToken == "" || newToken == "" {
		return false, ErrSyntax("The token provided must not be empty.")
	}
	if err := validateToken(oldToken); err != nil {
		return false, err
	}
	if err := validateToken(newToken); err != nil {
		return false, err
	}

	oldIdx := dtl.indexOf(oldToken)
	if oldIdx == -1 {
		return false, nil
	}
	newIdx := dtl.indexOf(newToken)

	switch {
	case newIdx == -1 || newIdx == oldIdx:
		dtl.tokens[oldIdx] = newToken
	case newIdx < oldIdx:
		dtl.tokens = append(dtl.tokens[:oldIdx], dtl.tokens[oldIdx+1:]...)
	default:
		dtl.tokens[oldIdx] = newToken
		dtl.tokens = append(dtl.tokens[:newIdx], dtl.tokens[newIdx+1:]...)
	}
	return true, nil
}

// Value returns the tokens joined by single spaces.
func (dtl *DOMTokenList) Value() string {
	return strings.Join(dtl.tokens, " ")
}

// SetValue replaces the set with the whitespace-separated tokens of value.
func (dtl *DOMTokenList) SetValue(value string) {
	dtl.tokens = nil
	for _, token := range strings.Fields(value) {
		if !dtl.Contains(token) {
			dtl.tokens = append(dtl.tokens, token)
		}
	}
}

// String returns the string representation (same as Value).
func (dtl *DOMTokenList) String() string {
	return dtl.Value()
}

// Values returns a copy of the tokens in order.
func (dtl *DOMTokenList) Values() []string {
	values := make([]string, len(dtl.tokens))
	copy(values, dtl.tokens)
	return values
}

func (dtl *DOMTokenList) clone() *DOMTokenList {
	return &DOMTokenList{tokens: dtl.Values()}
}
