package world

import (
	"sort"
	"sync"

	"github.com/hackshell/hackshell/pkg/errors"
)

// Registry maps IP addresses to servers.
//
// The registry only grows: Add never replaces an existing entry and there is
// no removal. It is safe for concurrent use so a watcher can extend it while
// the session reads from it.
//
// The index lock does not cover the servers' file systems. Code that changes
// a tree runs inside Update and code that reads trees from another goroutine
// runs inside View.
type Registry struct {
	mu      sync.RWMutex
	servers map[string]*Server

	trees sync.RWMutex
}

// NewRegistry creates a registry holding the given servers.
// Servers with a duplicate IP are rejected with AlreadyExists.
func NewRegistry(servers ...*Server) (*Registry, error) {
	r := &Registry{servers: make(map[string]*Server, len(servers))}
	for _, s := range servers {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a server. An empty IP is InvalidArgument; an IP already
// present is AlreadyExists and leaves the existing server in place.
func (r *Registry) Add(s *Server) error {
	if s == nil || s.IP == "" {
		return errors.NewInvalidArgumentError("server has no IP address")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.servers[s.IP]; exists {
		return errors.NewAlreadyExistsError(s.IP)
	}
	r.servers[s.IP] = s
	return nil
}

// Get returns the server registered under ip, or NotFound.
func (r *Registry) Get(ip string) (*Server, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.servers[ip]
	if !ok {
		return nil, errors.NewServerNotFoundError(ip)
	}
	return s, nil
}

// Has reports whether ip is registered.
func (r *Registry) Has(ip string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.servers[ip]
	return ok
}

// List returns all servers sorted by IP.
func (r *Registry) List() []*Server {
	r.mu.RLock()
	out := make([]*Server, 0, len(r.servers))
	for _, s := range r.servers {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].IP < out[j].IP })
	return out
}

// Len returns the number of registered servers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.servers)
}

// ============================================================================
// File System Access
// ============================================================================

// Update runs fn with exclusive access to every server's file system.
func (r *Registry) Update(fn func()) {
	r.trees.Lock()
	defer r.trees.Unlock()
	fn()
}

// View runs fn with shared read access to every server's file system.
func (r *Registry) View(fn func()) {
	r.trees.RLock()
	defer r.trees.RUnlock()
	fn()
}
