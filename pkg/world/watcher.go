package world

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hackshell/hackshell/internal/logger"
)

// Watcher follows a world file and registers servers that appear in it while
// a session is running. Existing servers are never replaced or removed.
type Watcher struct {
	path     string
	registry *Registry

	// OnAdd, when set, is called for each newly registered server.
	OnAdd func(*Server)
}

// NewWatcher creates a watcher for the world file at path.
func NewWatcher(path string, registry *Registry) *Watcher {
	return &Watcher{path: path, registry: registry}
}

// Run watches until ctx is cancelled. The parent directory is watched rather
// than the file itself so editors that replace the file by rename are seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch world directory: %w", err)
	}

	logger.Debug("World watcher started", logger.KeyPath, w.path)

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if _, err := w.Sync(); err != nil {
				logger.Warn("World reload failed", logger.KeyPath, w.path, logger.KeyError, err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}

// Sync reads the world file once and registers every server not yet known.
// It returns the newly added servers.
func (w *Watcher) Sync() ([]*Server, error) {
	f, err := ReadFile(w.path)
	if err != nil {
		return nil, err
	}

	specs := append([]ServerSpec{f.Home}, f.Servers...)
	var added []*Server
	for i := range specs {
		if w.registry.Has(specs[i].IP) {
			continue
		}
		s, err := specs[i].Build()
		if err != nil {
			return added, err
		}
		if err := w.registry.Add(s); err != nil {
			continue
		}
		added = append(added, s)
		logger.Info("Server discovered", logger.KeyServerIP, s.IP, logger.KeyName, s.Name)
		if w.OnAdd != nil {
			w.OnAdd(s)
		}
	}
	return added, nil
}
