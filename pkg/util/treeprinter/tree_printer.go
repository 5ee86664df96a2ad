// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package treeprinter generates ASCII trees for showing query plans and other
// hierarchical structures:
//
//	root
//	 ├── child-1
//	 │    └── grandchild
//	 └── child-2
//
// Nodes are added in depth-first order; the tree is rendered when String is
// called on the root.
package treeprinter

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	edgeLink = " │   "
	edgeMid  = " ├── "
	edgeLast = " └── "
	edgeNone = "     "
)

// Node is a handle associated with a specific depth in a tree. Calling Child
// on a node creates a new node one level deeper.
type Node struct {
	tree  *tree
	level int
}

type treeEntry struct {
	level int
	text  string
}

type tree struct {
	entries []treeEntry
}

// New creates a tree printer and returns a sentinel node reference which
// should be used to add the root.
func New() Node {
	return Node{tree: &tree{}, level: 0}
}

// Child creates a node which is a child of the given node.
func (n Node) Child(text string) Node {
	if strings.ContainsRune(text, '\n') {
		panic(fmt.Sprintf("multi-line entry: %q", text))
	}
	n.tree.entries = append(n.tree.entries, treeEntry{level: n.level, text: text})
	return Node{tree: n.tree, level: n.level + 1}
}

// Childf formats according to a format specifier and adds a node as a child
// of the given node.
func (n Node) Childf(format string, args ...interface{}) Node {
	return n.Child(fmt.Sprintf(format, args...))
}

// String returns the rendered tree. Must be called on the result of New.
func (n Node) String() string {
	t := n.tree
	if len(t.entries) == 0 {
		return ""
	}
	var buf bytes.Buffer
	for i, e := range t.entries {
		if e.level == 0 {
			buf.WriteString(e.text)
			buf.WriteByte('\n')
			continue
		}
		var prefix bytes.Buffer
		for l := 1; l < e.level; l++ {
			if t.hasSiblingBelow(i, l) {
				prefix.WriteString(edgeLink)
			} else {
				prefix.WriteString(edgeNone)
			}
		}
		if t.hasSiblingBelow(i, e.level) {
			prefix.WriteString(edgeMid)
		} else {
			prefix.WriteString(edgeLast)
		}
		buf.WriteString(prefix.String())
		buf.WriteString(e.text)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// hasSiblingBelow returns true if some entry after position i is at the given
// level without an intervening entry at a shallower level.
func (t *tree) hasSiblingBelow(i, level int) bool {
	for j := i + 1; j < len(t.entries); j++ {
		switch {
		case t.entries[j].level == level:
			return true
		case t.entries[j].level < level:
			return false
		}
	}
	return false
}
