package vfs

import (
	"strings"

	"github.com/hackshell/hackshell/pkg/errors"
)

// Options tunes the collision behavior of the mutating operations.
type Options struct {
	// Strict makes Touch, Mkdir and Copy fail with AlreadyExists instead of
	// replacing an existing entry, and Rmdir fail with DirectoryNotEmpty
	// instead of dropping a populated directory.
	Strict bool
}

// hasTrailingSeparator reports whether path names a directory explicitly.
func hasTrailingSeparator(path string) bool {
	return len(path) > 1 && strings.HasSuffix(path, Separator)
}

// ============================================================================
// Read Operations
// ============================================================================

// Cat returns the content of the file at path.
func Cat(path string, cwd, root *Node) (string, error) {
	file, err := ResolveFile(path, cwd, root)
	if err != nil {
		return "", err
	}
	return file.Content, nil
}

// List returns the sorted child names of the directory at path.
func List(path string, cwd, root *Node) ([]string, error) {
	dir, err := ResolveDir(path, cwd, root)
	if err != nil {
		return nil, err
	}
	return dir.ChildNames(), nil
}

// ============================================================================
// Create Operations
// ============================================================================

// Touch creates an empty file at path. The parent directory must exist.
// An existing entry with the same name is replaced unless opts.Strict is set.
// A trailing separator names a directory, so a missing one yields NotFound.
func Touch(path string, cwd, root *Node, opts Options) (*Node, error) {
	if hasTrailingSeparator(path) {
		dir, err := ResolveDir(path, cwd, root)
		if err != nil {
			return nil, err
		}
		return nil, errors.NewNotAFileError(dir.Path)
	}
	return create(path, cwd, root, opts, KindFile)
}

// Mkdir creates an empty directory at path. The parent directory must exist.
// An existing entry with the same name is replaced unless opts.Strict is set.
func Mkdir(path string, cwd, root *Node, opts Options) (*Node, error) {
	return create(path, cwd, root, opts, KindDirectory)
}

func create(path string, cwd, root *Node, opts Options, kind Kind) (*Node, error) {
	parent, leaf, err := resolveParent(path, cwd, root)
	if err != nil {
		return nil, err
	}

	childPath := BuildChildPath(parent.Path, leaf)
	if _, exists := parent.Children[leaf]; exists && opts.Strict {
		return nil, errors.NewAlreadyExistsError(childPath)
	}

	var node *Node
	if kind == KindDirectory {
		node = NewDirectory(childPath)
	} else {
		node = NewFile(childPath, "")
	}
	parent.Children[leaf] = node
	return node, nil
}

// ============================================================================
// Remove Operations
// ============================================================================

// Remove deletes the file at path. Directories yield NotAFile.
func Remove(path string, cwd, root *Node) (*Node, error) {
	file, err := ResolveFile(path, cwd, root)
	if err != nil {
		return nil, err
	}
	return file, detach(file, root)
}

// Rmdir deletes the directory at path together with everything below it.
// Files yield NotADirectory. With opts.Strict a populated directory yields
// DirectoryNotEmpty. The root itself can never be removed.
func Rmdir(path string, cwd, root *Node, opts Options) (*Node, error) {
	dir, err := ResolveDir(path, cwd, root)
	if err != nil {
		return nil, err
	}
	if dir == root {
		return nil, errors.NewInvalidArgumentError("cannot remove the root directory")
	}
	if opts.Strict && len(dir.Children) > 0 {
		return nil, errors.NewDirectoryNotEmptyError(dir.Path)
	}
	return dir, detach(dir, root)
}

// detach removes node from its parent, located through the node's canonical path.
func detach(node, root *Node) error {
	parentPath, leaf := Split(node.Path)
	parent, err := ResolveDir(parentPath, root, root)
	if err != nil {
		return err
	}
	if parent.Children[leaf] != node {
		return errors.NewNotFoundError(node.Path, errors.ResourcePath)
	}
	delete(parent.Children, leaf)
	return nil
}

// ============================================================================
// Copy and Move
// ============================================================================

// Copy duplicates the file at src.
//
// Destination rules:
//   - dst names an existing file: AlreadyExists.
//   - dst names an existing directory: the copy is inserted into it under the
//     source's name, replacing an entry of that name unless opts.Strict is
//     set, in which case the collision is AlreadyExists.
//   - dst does not exist: its parent directory must exist and the copy is
//     inserted there under dst's last segment. A trailing separator on a
//     missing dst yields NotFound.
//
// The copy is deep and every path inside it is rewritten to its new location.
func Copy(src, dst string, cwd, root *Node, opts Options) (*Node, error) {
	source, err := ResolveFile(src, cwd, root)
	if err != nil {
		return nil, err
	}

	target, err := Resolve(dst, cwd, root)
	switch {
	case err == nil && target.IsFile():
		return nil, errors.NewAlreadyExistsError(target.Path)

	case err == nil:
		name := source.Name()
		if _, exists := target.Children[name]; exists && opts.Strict {
			return nil, errors.NewAlreadyExistsError(BuildChildPath(target.Path, name))
		}
		clone := source.Clone(BuildChildPath(target.Path, name))
		target.Children[name] = clone
		return clone, nil

	case errors.IsNotFoundError(err):
		if hasTrailingSeparator(dst) {
			return nil, err
		}
		parent, leaf, perr := resolveParent(dst, cwd, root)
		if perr != nil {
			return nil, perr
		}
		clone := source.Clone(BuildChildPath(parent.Path, leaf))
		parent.Children[leaf] = clone
		return clone, nil

	default:
		return nil, err
	}
}

// Move is Copy followed by removing the source. A Copy failure is returned
// and nothing is removed. Once the copy succeeded the move is reported as
// successful; the removal result is returned separately for logging. Moving a
// file into the directory that already holds it leaves the copy in place.
func Move(src, dst string, cwd, root *Node, opts Options) (moved *Node, removeErr error, err error) {
	source, err := ResolveFile(src, cwd, root)
	if err != nil {
		return nil, nil, err
	}
	sourcePath := source.Path

	moved, err = Copy(src, dst, cwd, root, opts)
	if err != nil {
		return nil, nil, err
	}
	if moved.Path == sourcePath {
		return moved, nil, nil
	}

	_, removeErr = Remove(sourcePath, root, root)
	return moved, removeErr, nil
}

// ============================================================================
// Tree Building
// ============================================================================

// MkdirAll creates the directory at path, cleaned against the root, along
// with any missing parents. Existing directories are reused; a file in the
// way yields NotADirectory.
func MkdirAll(path string, root *Node) (*Node, error) {
	cur := root
	for _, seg := range Segments(Clean(Separator, path)) {
		child, ok := cur.Children[seg]
		if !ok {
			child = NewDirectory(BuildChildPath(cur.Path, seg))
			cur.Children[seg] = child
		} else if !child.IsDir() {
			return nil, errors.NewNotADirectoryError(child.Path)
		}
		cur = child
	}
	return cur, nil
}

// WriteFile creates or replaces the file at path, cleaned against the root,
// creating missing parent directories. A directory in the way yields NotAFile.
func WriteFile(path, content string, root *Node) (*Node, error) {
	dir, leaf := Split(Clean(Separator, path))
	if !ValidName(leaf) {
		return nil, errors.NewInvalidArgumentError("invalid name: " + path)
	}

	parent, err := MkdirAll(dir, root)
	if err != nil {
		return nil, err
	}
	if existing, ok := parent.Children[leaf]; ok && existing.IsDir() {
		return nil, errors.NewNotAFileError(existing.Path)
	}

	file := NewFile(BuildChildPath(parent.Path, leaf), content)
	parent.Children[leaf] = file
	return file, nil
}
