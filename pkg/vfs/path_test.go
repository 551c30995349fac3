package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		path     string
		wantDir  string
		wantLeaf string
	}{
		{"note.txt", "", "note.txt"},
		{"/note.txt", "/", "note.txt"},
		{"docs/note.txt", "docs", "note.txt"},
		{"/docs/", "/", "docs"},
		{"/a/b/c", "/a/b", "c"},
		{"/", "/", ""},
		{"", "", ""},
		{"../x", "..", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			dir, leaf := Split(tt.path)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantLeaf, leaf)
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		cwd  string
		path string
		want string
	}{
		{"/", "", "/"},
		{"/", "/", "/"},
		{"/", "..", "/"},
		{"/", "../../..", "/"},
		{"/a/b", "..", "/a"},
		{"/a/b", "c", "/a/b/c"},
		{"/a/b", "/x//y/./z", "/x/y/z"},
		{"/a/b", "./../c/", "/a/c"},
		{"/a", "b/../../..", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.cwd+"+"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.cwd, tt.path))
		})
	}
}

func TestBuildChildPath(t *testing.T) {
	assert.Equal(t, "/docs", BuildChildPath("/", "docs"))
	assert.Equal(t, "/docs", BuildChildPath("", "docs"))
	assert.Equal(t, "/docs/note.txt", BuildChildPath("/docs", "note.txt"))
}

func TestSegments_DropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Segments("//a///b/c/"))
	assert.Empty(t, Segments("/"))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("note.txt"))
	assert.True(t, ValidName(".hidden"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("."))
	assert.False(t, ValidName(".."))
	assert.False(t, ValidName("a/b"))
}
