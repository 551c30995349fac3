package shell

import (
	stderrors "errors"
	"strings"

	"github.com/hackshell/hackshell/pkg/errors"
	"github.com/hackshell/hackshell/pkg/session"
)

const notLoggedIn = "Not logged in"

// FormatError renders an engine error as the line shown to the player.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if stderrors.Is(err, session.ErrEmptyDirectory) {
		return "No files found"
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		return "Error: " + err.Error()
	}

	switch e.Code {
	case errors.ErrCommandNotFound:
		return "Command not found: " + e.Path
	case errors.ErrNotFound:
		if e.Resource == errors.ResourceServer {
			return "Server not found: " + e.Path
		}
		return e.Path + ": No such file or directory"
	case errors.ErrNotAFile:
		return e.Path + ": Is a directory"
	case errors.ErrNotADirectory:
		return e.Path + ": Not a directory"
	case errors.ErrAlreadyExists:
		return e.Path + ": File exists"
	case errors.ErrDirectoryNotEmpty:
		return e.Path + ": Directory not empty"
	case errors.ErrPermissionDenied:
		return notLoggedIn
	case errors.ErrInvalidCredentials:
		return "Invalid username or password"
	case errors.ErrAlreadyLoggedIn:
		return "Already logged in"
	case errors.ErrAlreadyLoggedOut:
		return "Already logged out"
	case errors.ErrInvariantViolation:
		return capitalize(e.Message)
	case errors.ErrInvalidArgument:
		return e.Message
	default:
		return "Error: " + e.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// resultLabel names the outcome of a command for metrics and logs.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case stderrors.Is(err, session.ErrEmptyDirectory):
		return "empty"
	}
	if code := errors.CodeOf(err); code != 0 {
		return code.String()
	}
	return "error"
}
