package html

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchTags(t *testing.T) {
	src := "<div><p>hi</p><br/></div>"

	table, err := MatchTags(src, 0)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())
	require.Equal(t, []Match{
		{Open: 0, Close: 19},
		{Open: 5, Close: 10},
		{Open: 14, Close: NoBody},
	}, table.Entries())

	closeAt, ok := table.Close(5)
	require.True(t, ok)
	require.Equal(t, 10, closeAt)

	_, ok = table.Close(1)
	require.False(t, ok)
}

func TestMatchTags_SkipsCommentsAndDeclarations(t *testing.T) {
	src := "<!DOCTYPE html><!-- x --><p></p>"

	table, err := MatchTags(src, 0)
	require.NoError(t, err)
	require.Equal(t, []Match{{Open: 25, Close: 28}}, table.Entries())
}

func TestMatchTags_Empty(t *testing.T) {
	table, err := MatchTags("", 0)
	require.NoError(t, err)
	require.Zero(t, table.Len())
	require.Empty(t, table.Entries())
}

func TestMatchTags_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		maxDepth int
		err      error
		offset   int
	}{
		{name: "unclosed", src: "<div><span></div>", err: ErrUnbalancedMarkup, offset: 0},
		{name: "stray close", src: "text</p>", err: ErrUnbalancedMarkup, offset: 4},
		{name: "stray self-close", src: "a/>", err: ErrUnbalancedMarkup, offset: 1},
		{name: "innermost unclosed", src: "<a><b></b><c>", err: ErrUnbalancedMarkup, offset: 10},
		{name: "too deep", src: "<a><b><c></c></b></a>", maxDepth: 2, err: ErrNestingTooDeep, offset: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := MatchTags(tc.src, tc.maxDepth)
			require.Nil(t, table)
			require.ErrorIs(t, err, tc.err)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			require.Equal(t, tc.offset, syntaxErr.Offset)
		})
	}
}

func TestMatchTags_DepthWithinLimit(t *testing.T) {
	_, err := MatchTags("<a><b><c></c></b></a>", 3)
	require.NoError(t, err)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "TEXT", stateText.String())
	require.Equal(t, "TAG_ATT_VALUE_QUOTED", stateTagAttValueQuoted.String())
	require.Equal(t, "TAG_CLOSE", stateTagClose.String())
	require.Equal(t, "UNKNOWN", state(42).String())
}
