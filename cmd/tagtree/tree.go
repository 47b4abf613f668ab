package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/chrisuehlinger/tagtree/dom"
)

const treeIndent = "  "

// writeTree prints one line per node, indented by depth. Lines longer than
// width are cut with an ellipsis.
func writeTree(w io.Writer, nodes dom.NodeList, width int) error {
	for _, n := range nodes {
		if err := writeTreeNode(w, n, 0, width); err != nil {
			return err
		}
	}
	return nil
}

func writeTreeNode(w io.Writer, n *dom.Node, depth, width int) error {
	line := strings.Repeat(treeIndent, depth) + describe(n)
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.ChildNodes() {
		if err := writeTreeNode(w, c, depth+1, width); err != nil {
			return err
		}
	}
	return nil
}

func describe(n *dom.Node) string {
	switch n.NodeType() {
	case dom.TextNode:
		return "#text " + strconv.Quote(n.NodeValue())
	case dom.CommentNode:
		return "#comment " + strconv.Quote(n.NodeValue())
	}

	el := n.AsElement()
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(el.TagName())
	attrs := el.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		sb.WriteByte(' ')
		sb.WriteString(attr.Name())
		if !attr.Bare() {
			sb.WriteByte('=')
			sb.WriteString(strconv.Quote(attr.Value()))
		}
	}
	if classes := el.ClassList(); classes.Length() > 0 {
		sb.WriteString(" class=[")
		sb.WriteString(classes.Value())
		sb.WriteByte(']')
	}
	if el.SelfClosing() {
		sb.WriteString(" /")
	}
	sb.WriteByte('>')
	if el.Kind() != dom.KindGeneric {
		sb.WriteString(" (")
		sb.WriteString(el.Kind().String())
		sb.WriteByte(')')
	}
	return sb.String()
}
