// Package vfstest provides fixtures for tests that need a populated file tree.
//
// Usage:
//
//	root := vfstest.Tree(t, map[string]string{
//	    "/docs/":          "",
//	    "/docs/note.txt":  "hello",
//	    "/etc/passwd":     "root:x:0:0",
//	})
//
// Keys ending in "/" create directories; every other key creates a file with
// the mapped content. Missing parents are created automatically.
package vfstest
