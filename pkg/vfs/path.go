package vfs

import (
	"strings"
)

// Separator is the path segment delimiter and the root path.
const Separator = "/"

const (
	segmentCurrent = "."
	segmentParent  = ".."
)

// IsAbs reports whether the path starts at the root.
func IsAbs(path string) bool {
	return strings.HasPrefix(path, Separator)
}

// BuildChildPath constructs a child path from a parent path and a name.
func BuildChildPath(parentPath, name string) string {
	if parentPath == Separator || parentPath == "" {
		return Separator + name
	}
	return parentPath + Separator + name
}

// Join appends a relative path to a base path. Absolute paths are returned
// unchanged. The result is not cleaned.
func Join(base, path string) string {
	if IsAbs(path) {
		return path
	}
	if path == "" {
		return base
	}
	return BuildChildPath(base, path)
}

// Split divides a path into its directory part and its last segment.
//
// Trailing separators are ignored. A path without a separator has an empty
// directory part, meaning "the current directory". The root path has an
// empty leaf.
//
// Examples:
//   - Split("note.txt")       -> ("", "note.txt")
//   - Split("/note.txt")      -> ("/", "note.txt")
//   - Split("docs/note.txt")  -> ("docs", "note.txt")
//   - Split("/docs/")         -> ("/", "docs")
//   - Split("/")              -> ("/", "")
func Split(path string) (dir, leaf string) {
	trimmed := strings.TrimRight(path, Separator)
	if trimmed == "" {
		if IsAbs(path) {
			return Separator, ""
		}
		return "", ""
	}

	idx := strings.LastIndex(trimmed, Separator)
	switch {
	case idx < 0:
		return "", trimmed
	case idx == 0:
		return Separator, trimmed[1:]
	default:
		return trimmed[:idx], trimmed[idx+1:]
	}
}

// Segments splits a path on the separator and drops empty segments.
func Segments(path string) []string {
	parts := strings.Split(path, Separator)
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// Clean returns the canonical absolute form of path interpreted relative to
// cwdPath, using the same rules as Resolve but without consulting a tree:
// "." is dropped, ".." pops one segment and never climbs above the root, and
// repeated separators collapse.
func Clean(cwdPath, path string) string {
	stack := make([]string, 0, 8)
	for _, seg := range Segments(Join(cwdPath, path)) {
		switch seg {
		case segmentCurrent:
		case segmentParent:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return Separator + strings.Join(stack, Separator)
}

// ValidName reports whether name can be used as a directory entry.
func ValidName(name string) bool {
	return name != "" &&
		name != segmentCurrent &&
		name != segmentParent &&
		!strings.Contains(name, Separator)
}
