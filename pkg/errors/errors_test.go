package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrNotFound, "NotFound"},
		{ErrNotAFile, "NotAFile"},
		{ErrNotADirectory, "NotADirectory"},
		{ErrAlreadyExists, "AlreadyExists"},
		{ErrDirectoryNotEmpty, "DirectoryNotEmpty"},
		{ErrPermissionDenied, "PermissionDenied"},
		{ErrInvalidCredentials, "InvalidCredentials"},
		{ErrAlreadyLoggedIn, "AlreadyLoggedIn"},
		{ErrAlreadyLoggedOut, "AlreadyLoggedOut"},
		{ErrInvariantViolation, "InvariantViolation"},
		{ErrInvalidArgument, "InvalidArgument"},
		{ErrCommandNotFound, "CommandNotFound"},
		{ErrorCode(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("WithPath", func(t *testing.T) {
		err := NewNotFoundError("/etc/passwd", "file")
		assert.Equal(t, "NotFound: file not found (path: /etc/passwd)", err.Error())
	})

	t.Run("WithoutPath", func(t *testing.T) {
		err := NewInvalidArgumentError("missing operand")
		assert.Equal(t, "InvalidArgument: missing operand", err.Error())
	})
}

func TestCodeOf(t *testing.T) {
	t.Run("DirectError", func(t *testing.T) {
		assert.Equal(t, ErrNotADirectory, CodeOf(NewNotADirectoryError("/a")))
	})

	t.Run("WrappedError", func(t *testing.T) {
		wrapped := fmt.Errorf("cd failed: %w", NewNotADirectoryError("/a"))
		assert.Equal(t, ErrNotADirectory, CodeOf(wrapped))
	})

	t.Run("ForeignError", func(t *testing.T) {
		assert.Equal(t, ErrorCode(0), CodeOf(fmt.Errorf("boom")))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, ErrorCode(0), CodeOf(nil))
		assert.False(t, Is(nil, ErrNotFound))
	})
}

func TestNotFoundResource(t *testing.T) {
	err := NewServerNotFoundError("10.9.9.9")
	assert.Equal(t, ErrNotFound, err.Code)
	assert.Equal(t, ResourceServer, err.Resource)
	assert.Equal(t, "10.9.9.9", err.Path)

	assert.Equal(t, ResourcePath, NewNotFoundError("/x", ResourcePath).Resource)
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("/x", "path")))
	assert.False(t, IsNotFoundError(NewNotAFileError("/x")))
	assert.True(t, IsPermissionDeniedError(NewPermissionDeniedError("10.0.0.1")))
	assert.True(t, IsTypeError(NewNotAFileError("/x")))
	assert.True(t, IsTypeError(NewNotADirectoryError("/x")))
	assert.False(t, IsTypeError(NewAlreadyExistsError("/x")))
}
