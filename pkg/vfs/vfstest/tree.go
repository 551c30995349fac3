package vfstest

import (
	"sort"
	"strings"
	"testing"

	"github.com/hackshell/hackshell/pkg/vfs"
)

// Tree builds a tree from a path -> content map. See the package doc.
func Tree(t testing.TB, entries map[string]string) *vfs.Node {
	t.Helper()

	root := vfs.NewRoot()

	// Sorted so parents are always created before their children.
	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if strings.HasSuffix(p, vfs.Separator) {
			if _, err := vfs.MkdirAll(p, root); err != nil {
				t.Fatalf("MkdirAll(%q) failed: %v", p, err)
			}
			continue
		}
		if _, err := vfs.WriteFile(p, entries[p], root); err != nil {
			t.Fatalf("WriteFile(%q) failed: %v", p, err)
		}
	}

	return root
}

// AssertPathsCanonical fails the test if any node's stored path differs from
// the path obtained by walking down from the root.
func AssertPathsCanonical(t testing.TB, root *vfs.Node) {
	t.Helper()

	var check func(n *vfs.Node, want string)
	check = func(n *vfs.Node, want string) {
		if n.Path != want {
			t.Errorf("node path = %q, want %q", n.Path, want)
		}
		for name, child := range n.Children {
			check(child, vfs.BuildChildPath(want, name))
		}
	}
	check(root, vfs.Separator)
}

// AllPaths returns the canonical path of every node below root, root included,
// in depth-first lexical order.
func AllPaths(root *vfs.Node) []string {
	var paths []string
	root.Walk(func(n *vfs.Node) bool {
		paths = append(paths, n.Path)
		return true
	})
	return paths
}
