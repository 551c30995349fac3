package vfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackshell/hackshell/pkg/errors"
	"github.com/hackshell/hackshell/pkg/vfs"
	"github.com/hackshell/hackshell/pkg/vfs/vfstest"
)

func sampleTree(t *testing.T) *vfs.Node {
	return vfstest.Tree(t, map[string]string{
		"/home/":            "",
		"/home/user/":       "",
		"/home/user/todo":   "buy milk",
		"/etc/passwd":       "root:x:0:0",
		"/var/log/auth.log": "denied",
		"/var/log/old/":     "",
		"/readme.txt":       "welcome",
	})
}

func TestResolve_CanonicalRoundTrip(t *testing.T) {
	root := sampleTree(t)

	for _, p := range vfstest.AllPaths(root) {
		node, err := vfs.Resolve(p, root, root)
		require.NoError(t, err, "path %s", p)
		assert.Equal(t, p, node.Path)
	}
}

func TestResolve_Relative(t *testing.T) {
	root := sampleTree(t)
	home, err := vfs.Resolve("/home", root, root)
	require.NoError(t, err)

	node, err := vfs.Resolve("user/todo", home, root)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/todo", node.Path)
	assert.Equal(t, "buy milk", node.Content)
}

func TestResolve_EmptyIsCwd(t *testing.T) {
	root := sampleTree(t)
	home, err := vfs.Resolve("/home/user", root, root)
	require.NoError(t, err)

	node, err := vfs.Resolve("", home, root)
	require.NoError(t, err)
	assert.Same(t, home, node)
}

func TestResolve_ParentSegments(t *testing.T) {
	root := sampleTree(t)

	t.Run("ParentOfNonRoot", func(t *testing.T) {
		for _, p := range vfstest.AllPaths(root) {
			node, err := vfs.Resolve(p, root, root)
			require.NoError(t, err)
			if !node.IsDir() || node == root {
				continue
			}

			parent, err := vfs.Resolve("..", node, root)
			require.NoError(t, err)
			dir, _ := vfs.Split(p)
			assert.Equal(t, dir, parent.Path)
		}
	})

	t.Run("ParentOfRootIsRoot", func(t *testing.T) {
		node, err := vfs.Resolve("..", root, root)
		require.NoError(t, err)
		assert.Same(t, root, node)

		node, err = vfs.Resolve("/../../..", root, root)
		require.NoError(t, err)
		assert.Same(t, root, node)
	})

	t.Run("DotAndRepeatedSeparators", func(t *testing.T) {
		node, err := vfs.Resolve("/./var//log/./old/../auth.log", root, root)
		require.NoError(t, err)
		assert.Equal(t, "/var/log/auth.log", node.Path)
	})
}

func TestResolve_NotFound(t *testing.T) {
	root := sampleTree(t)

	tests := []struct {
		name string
		path string
	}{
		{"MissingChild", "/nope"},
		{"MissingNested", "/home/user/missing"},
		{"ThroughFile", "/etc/passwd/shadow"},
		{"ThroughFileWithDot", "/etc/passwd/."},
		{"ThroughFileWithParent", "/etc/passwd/.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := vfs.Resolve(tt.path, root, root)
			assert.Nil(t, node)
			assert.True(t, errors.IsNotFoundError(err), "got %v", err)
		})
	}
}

func TestResolve_DoesNotMutate(t *testing.T) {
	root := sampleTree(t)
	before := vfstest.AllPaths(root)

	_, _ = vfs.Resolve("/home/../etc/./passwd", root, root)
	_, _ = vfs.Resolve("/missing/../../x", root, root)

	assert.Equal(t, before, vfstest.AllPaths(root))
}

func TestResolve_NilArguments(t *testing.T) {
	root := sampleTree(t)

	node, err := vfs.Resolve("/etc", nil, root)
	require.NoError(t, err)
	assert.Equal(t, "/etc", node.Path)

	_, err = vfs.Resolve("/etc", nil, nil)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestResolveDir_AndResolveFile(t *testing.T) {
	root := sampleTree(t)

	_, err := vfs.ResolveDir("/readme.txt", root, root)
	assert.True(t, errors.Is(err, errors.ErrNotADirectory))

	_, err = vfs.ResolveFile("/home", root, root)
	assert.True(t, errors.Is(err, errors.ErrNotAFile))

	_, err = vfs.ResolveFile("/missing", root, root)
	assert.True(t, errors.IsNotFoundError(err))
}
