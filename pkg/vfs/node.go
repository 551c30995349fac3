// Package vfs implements the in-memory hierarchical file store that every
// simulated server exposes.
//
// A tree is made of *Node values. Directories own a map of children keyed by
// a single path segment; files carry an opaque string payload. Nodes never
// point at their parent: every traversal starts at the root and walks down,
// so the tree can be shared, cloned and serialized without back-references.
//
// Every node stores its canonical absolute path. All mutations in this
// package keep that path equal to the "/"-joined segments leading to the node
// from the root.
package vfs

import (
	"sort"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindDirectory is a node with children.
	KindDirectory Kind = iota + 1

	// KindFile is a node with content.
	KindFile
)

// String returns the lowercase kind name used in listings and logs.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node is a file or directory in a server's file store.
type Node struct {
	// Kind is KindDirectory or KindFile.
	Kind Kind

	// Path is the canonical absolute path of the node ("/" for the root).
	Path string

	// Children maps a single path segment to the child node.
	// Always non-nil for directories, nil for files.
	Children map[string]*Node

	// Content is the opaque payload of a file. Unused for directories.
	Content string
}

// NewDirectory creates an empty directory at the given canonical path.
func NewDirectory(path string) *Node {
	return &Node{
		Kind:     KindDirectory,
		Path:     path,
		Children: make(map[string]*Node),
	}
}

// NewFile creates a file at the given canonical path.
func NewFile(path, content string) *Node {
	return &Node{
		Kind:    KindFile,
		Path:    path,
		Content: content,
	}
}

// NewRoot creates an empty root directory.
func NewRoot() *Node {
	return NewDirectory(Separator)
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool {
	return n != nil && n.Kind == KindDirectory
}

// IsFile reports whether n is a file.
func (n *Node) IsFile() bool {
	return n != nil && n.Kind == KindFile
}

// Name returns the last segment of the node's path, or "/" for the root.
func (n *Node) Name() string {
	_, leaf := Split(n.Path)
	if leaf == "" {
		return Separator
	}
	return leaf
}

// ChildNames returns the names of a directory's children in lexical order.
// Files have no children and return nil.
func (n *Node) ChildNames() []string {
	if !n.IsDir() {
		return nil
	}
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of n re-rooted at newPath. The path of every
// descendant in the copy is rewritten to sit under newPath.
func (n *Node) Clone(newPath string) *Node {
	if n.IsFile() {
		return NewFile(newPath, n.Content)
	}

	dir := NewDirectory(newPath)
	for name, child := range n.Children {
		dir.Children[name] = child.Clone(BuildChildPath(newPath, name))
	}
	return dir
}

// Walk calls fn for n and every descendant in depth-first, lexical order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, name := range n.ChildNames() {
		n.Children[name].Walk(fn)
	}
}

// Count returns the number of nodes in the tree rooted at n, n included.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
