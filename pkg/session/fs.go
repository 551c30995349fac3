package session

import (
	stderrors "errors"

	"github.com/hackshell/hackshell/internal/logger"
	"github.com/hackshell/hackshell/pkg/errors"
	"github.com/hackshell/hackshell/pkg/vfs"
)

// ErrEmptyDirectory is returned by Ls for a directory without entries.
var ErrEmptyDirectory = stderrors.New("no files found")

// All file system verbs require a login on the current server. Paths are
// appended to the working directory and resolved from the server root, so a
// working directory that was removed underneath the player yields NotFound
// instead of resolving against a detached node.

// requireLogin fails with PermissionDenied unless logged in on Current.
func (s *Session) requireLogin() error {
	if !s.IsLoggedIn() {
		return errors.NewPermissionDeniedError(s.Current.IP)
	}
	return nil
}

func (s *Session) root() *vfs.Node {
	return s.Current.FileSystem
}

// abs joins path onto the working directory.
func (s *Session) abs(path string) string {
	return vfs.Join(s.CurrentPath, path)
}

// requireName rejects empty path arguments for verbs that create or delete.
func requireName(verb, path string) error {
	if path == "" {
		return errors.NewInvalidArgumentError(verb + ": missing operand")
	}
	return nil
}

// Cd changes the working directory. Files yield NotADirectory and leave the
// working directory unchanged.
func (s *Session) Cd(path string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}

	dir, err := vfs.ResolveDir(s.abs(path), s.root(), s.root())
	if err != nil {
		return err
	}
	s.CurrentPath = dir.Path
	return nil
}

// Ls lists the entries of path, or of the working directory when path is
// empty. An empty directory yields ErrEmptyDirectory.
func (s *Session) Ls(path string) ([]string, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	names, err := vfs.List(s.abs(path), s.root(), s.root())
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrEmptyDirectory
	}
	return names, nil
}

// Cat returns the content of a file.
func (s *Session) Cat(path string) (string, error) {
	if err := s.requireLogin(); err != nil {
		return "", err
	}
	return vfs.Cat(s.abs(path), s.root(), s.root())
}

// Touch creates an empty file.
func (s *Session) Touch(path string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := requireName("touch", path); err != nil {
		return err
	}

	node, err := vfs.Touch(s.abs(path), s.root(), s.root(), s.fsOpts)
	if err != nil {
		return err
	}
	s.logChange("touch", node.Path)
	return nil
}

// Mkdir creates an empty directory.
func (s *Session) Mkdir(path string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := requireName("mkdir", path); err != nil {
		return err
	}

	node, err := vfs.Mkdir(s.abs(path), s.root(), s.root(), s.fsOpts)
	if err != nil {
		return err
	}
	s.logChange("mkdir", node.Path)
	return nil
}

// Rm removes a file.
func (s *Session) Rm(path string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := requireName("rm", path); err != nil {
		return err
	}

	node, err := vfs.Remove(s.abs(path), s.root(), s.root())
	if err != nil {
		return err
	}
	s.logChange("rm", node.Path)
	return nil
}

// Rmdir removes a directory with everything below it. Removing the working
// directory, or one of its ancestors, is allowed: the working directory is
// left pointing at the removed path and later commands report NotFound.
func (s *Session) Rmdir(path string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := requireName("rmdir", path); err != nil {
		return err
	}

	node, err := vfs.Rmdir(s.abs(path), s.root(), s.root(), s.fsOpts)
	if err != nil {
		return err
	}
	s.logChange("rmdir", node.Path)
	return nil
}

// Cp copies a file.
func (s *Session) Cp(src, dst string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := requireName("cp", src); err != nil {
		return err
	}
	if err := requireName("cp", dst); err != nil {
		return err
	}

	node, err := vfs.Copy(s.abs(src), s.abs(dst), s.root(), s.root(), s.fsOpts)
	if err != nil {
		return err
	}
	s.log.Debug("Copied", logger.ServerIP(s.Current.IP), logger.OldPath(src), logger.NewPath(node.Path))
	return nil
}

// Mv moves a file. A failed copy is reported and nothing is removed; once the
// copy succeeded the move succeeds.
func (s *Session) Mv(src, dst string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}
	if err := requireName("mv", src); err != nil {
		return err
	}
	if err := requireName("mv", dst); err != nil {
		return err
	}

	node, removeErr, err := vfs.Move(s.abs(src), s.abs(dst), s.root(), s.root(), s.fsOpts)
	if err != nil {
		return err
	}
	if removeErr != nil {
		s.log.Warn("Move left source behind", logger.ServerIP(s.Current.IP), logger.OldPath(src), logger.Err(removeErr))
	}
	s.log.Debug("Moved", logger.ServerIP(s.Current.IP), logger.OldPath(src), logger.NewPath(node.Path))
	return nil
}

func (s *Session) logChange(verb, path string) {
	s.log.Debug("File system changed", logger.ServerIP(s.Current.IP), logger.Command(verb), logger.Path(path))
}
