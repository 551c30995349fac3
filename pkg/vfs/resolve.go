package vfs

import (
	"github.com/hackshell/hackshell/pkg/errors"
)

// Resolve maps a path to a node in the tree rooted at root.
//
// Resolution rules:
//   - A path starting with "/" is resolved from root; any other path is
//     appended to cwd's canonical path and resolved from root.
//   - The empty string resolves to cwd itself.
//   - "." is a no-op and ".." pops one level; ".." at the root stays at the root.
//   - Empty segments (repeated separators) are skipped.
//   - Every other segment must name a child of the current node. Walking
//     through a file, or naming a missing child, yields a NotFound error.
//
// Resolve never mutates the tree. A nil cwd is treated as the root.
func Resolve(path string, cwd, root *Node) (*Node, error) {
	if root == nil {
		return nil, errors.NewInvalidArgumentError("resolve: nil root")
	}
	if cwd == nil {
		cwd = root
	}
	if path == "" {
		return cwd, nil
	}

	full := Join(cwd.Path, path)

	// The stack holds every node visited on the way down so ".." can pop
	// without parent pointers.
	stack := make([]*Node, 1, 8)
	stack[0] = root

	for _, seg := range Segments(full) {
		top := stack[len(stack)-1]
		if !top.IsDir() {
			return nil, errors.NewNotFoundError(Clean(cwd.Path, path), errors.ResourcePath)
		}

		switch seg {
		case segmentCurrent:
			continue
		case segmentParent:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		child, ok := top.Children[seg]
		if !ok {
			return nil, errors.NewNotFoundError(Clean(cwd.Path, path), errors.ResourcePath)
		}
		stack = append(stack, child)
	}

	return stack[len(stack)-1], nil
}

// ResolveDir resolves a path and requires the result to be a directory.
// A file yields NotADirectory; a missing path yields NotFound.
func ResolveDir(path string, cwd, root *Node) (*Node, error) {
	node, err := Resolve(path, cwd, root)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, errors.NewNotADirectoryError(node.Path)
	}
	return node, nil
}

// ResolveFile resolves a path and requires the result to be a file.
// A directory yields NotAFile; a missing path yields NotFound.
func ResolveFile(path string, cwd, root *Node) (*Node, error) {
	node, err := Resolve(path, cwd, root)
	if err != nil {
		return nil, err
	}
	if !node.IsFile() {
		return nil, errors.NewNotAFileError(node.Path)
	}
	return node, nil
}

// resolveParent resolves the directory that would contain path and returns
// it together with the validated leaf name.
func resolveParent(path string, cwd, root *Node) (*Node, string, error) {
	dir, leaf := Split(path)
	if !ValidName(leaf) {
		return nil, "", errors.NewInvalidArgumentError("invalid name: " + path)
	}

	parent, err := ResolveDir(dir, cwd, root)
	if err != nil {
		return nil, "", err
	}
	return parent, leaf, nil
}
