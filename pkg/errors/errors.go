// Package errors provides error types and error codes for the shell engine.
// This is a leaf package with no internal dependencies, imported by the vfs,
// session and shell packages alike.
//
// Import graph: errors <- vfs <- session <- shell
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrNotFound indicates a path, server address or command does not exist.
	ErrNotFound ErrorCode = iota + 1

	// ErrNotAFile indicates a file operation was attempted on a directory.
	ErrNotAFile

	// ErrNotADirectory indicates a directory operation was attempted on a file.
	ErrNotADirectory

	// ErrAlreadyExists indicates the destination entry already exists.
	ErrAlreadyExists

	// ErrDirectoryNotEmpty indicates rmdir on a directory with children.
	// Only returned when strict mode is enabled.
	ErrDirectoryNotEmpty

	// ErrPermissionDenied indicates a filesystem operation while logged out.
	ErrPermissionDenied

	// ErrInvalidCredentials indicates a username/password mismatch.
	ErrInvalidCredentials

	// ErrAlreadyLoggedIn indicates login on a server that is already authenticated.
	ErrAlreadyLoggedIn

	// ErrAlreadyLoggedOut indicates logout on a server that is not authenticated.
	ErrAlreadyLoggedOut

	// ErrInvariantViolation indicates an operation that would break a session
	// invariant, such as dropping the home connection.
	ErrInvariantViolation

	// ErrInvalidArgument indicates a missing or malformed command argument.
	ErrInvalidArgument

	// ErrCommandNotFound indicates an unknown command verb.
	ErrCommandNotFound
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrNotFound:
		return "NotFound"
	case ErrNotAFile:
		return "NotAFile"
	case ErrNotADirectory:
		return "NotADirectory"
	case ErrAlreadyExists:
		return "AlreadyExists"
	case ErrDirectoryNotEmpty:
		return "DirectoryNotEmpty"
	case ErrPermissionDenied:
		return "PermissionDenied"
	case ErrInvalidCredentials:
		return "InvalidCredentials"
	case ErrAlreadyLoggedIn:
		return "AlreadyLoggedIn"
	case ErrAlreadyLoggedOut:
		return "AlreadyLoggedOut"
	case ErrInvariantViolation:
		return "InvariantViolation"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrCommandNotFound:
		return "CommandNotFound"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// Error represents an engine error with an error code.
type Error struct {
	Code    ErrorCode
	Message string
	Path    string

	// Resource names what a NotFound error failed to find.
	Resource string
}

// Resource kinds carried by NotFound errors.
const (
	ResourcePath   = "path"
	ResourceServer = "server"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ============================================================================
// Factory Functions
// ============================================================================

// NewNotFoundError creates a NotFound error for a path or other resource.
func NewNotFoundError(path, resourceType string) *Error {
	return &Error{
		Code:     ErrNotFound,
		Message:  fmt.Sprintf("%s not found", resourceType),
		Path:     path,
		Resource: resourceType,
	}
}

// NewServerNotFoundError creates a NotFound error for an unregistered IP.
func NewServerNotFoundError(ip string) *Error {
	return NewNotFoundError(ip, ResourceServer)
}

// NewNotAFileError creates a NotAFile error.
func NewNotAFileError(path string) *Error {
	return &Error{
		Code:    ErrNotAFile,
		Message: "is a directory",
		Path:    path,
	}
}

// NewNotADirectoryError creates a NotADirectory error.
func NewNotADirectoryError(path string) *Error {
	return &Error{
		Code:    ErrNotADirectory,
		Message: "not a directory",
		Path:    path,
	}
}

// NewAlreadyExistsError creates an AlreadyExists error.
func NewAlreadyExistsError(path string) *Error {
	return &Error{
		Code:    ErrAlreadyExists,
		Message: "already exists",
		Path:    path,
	}
}

// NewDirectoryNotEmptyError creates a DirectoryNotEmpty error.
func NewDirectoryNotEmptyError(path string) *Error {
	return &Error{
		Code:    ErrDirectoryNotEmpty,
		Message: "directory not empty",
		Path:    path,
	}
}

// NewPermissionDeniedError creates a PermissionDenied error.
func NewPermissionDeniedError(serverIP string) *Error {
	return &Error{
		Code:    ErrPermissionDenied,
		Message: fmt.Sprintf("not logged in to %s", serverIP),
	}
}

// NewInvalidCredentialsError creates an InvalidCredentials error.
func NewInvalidCredentialsError(username string) *Error {
	return &Error{
		Code:    ErrInvalidCredentials,
		Message: fmt.Sprintf("invalid username or password for %q", username),
	}
}

// NewAlreadyLoggedInError creates an AlreadyLoggedIn error.
func NewAlreadyLoggedInError(serverIP string) *Error {
	return &Error{
		Code:    ErrAlreadyLoggedIn,
		Message: fmt.Sprintf("already logged in to %s", serverIP),
	}
}

// NewAlreadyLoggedOutError creates an AlreadyLoggedOut error.
func NewAlreadyLoggedOutError(serverIP string) *Error {
	return &Error{
		Code:    ErrAlreadyLoggedOut,
		Message: fmt.Sprintf("not logged in to %s", serverIP),
	}
}

// NewInvariantViolationError creates an InvariantViolation error.
func NewInvariantViolationError(message string) *Error {
	return &Error{
		Code:    ErrInvariantViolation,
		Message: message,
	}
}

// NewInvalidArgumentError creates an InvalidArgument error.
func NewInvalidArgumentError(message string) *Error {
	return &Error{
		Code:    ErrInvalidArgument,
		Message: message,
	}
}

// NewCommandNotFoundError creates a CommandNotFound error.
func NewCommandNotFoundError(verb string) *Error {
	return &Error{
		Code:    ErrCommandNotFound,
		Message: "command not found",
		Path:    verb,
	}
}

// ============================================================================
// Error Type Checking Helpers
// ============================================================================

// CodeOf returns the ErrorCode carried by err, or 0 when err is not an *Error.
// Wrapped errors are unwrapped.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return 0
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// IsNotFoundError returns true if the error is a NotFound error.
func IsNotFoundError(err error) bool {
	return Is(err, ErrNotFound)
}

// IsPermissionDeniedError returns true if the error is a PermissionDenied error.
func IsPermissionDeniedError(err error) bool {
	return Is(err, ErrPermissionDenied)
}

// IsTypeError returns true if the error reports a file/directory type mismatch.
func IsTypeError(err error) bool {
	code := CodeOf(err)
	return code == ErrNotAFile || code == ErrNotADirectory
}
