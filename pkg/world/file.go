package world

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hackshell/hackshell/pkg/vfs"
)

// World is a populated network ready for a session: the player's home
// server and the registry of every reachable server, home included.
type World struct {
	Home     *Server
	Registry *Registry
}

// ============================================================================
// World File Format
// ============================================================================

// File is the on-disk YAML representation of a world.
//
// Example:
//
//	home:
//	  ip: 10.0.0.1
//	  name: home
//	  users:
//	    - username: player
//	      password: secret
//	  files:
//	    - path: /notes.txt
//	      content: remember the admin password
//	servers:
//	  - ip: 203.0.113.7
//	    name: Acme Corp's mainframe
//	    security_level: 40
//	    users:
//	      - username: admin
//	        password: hunter2
//	    files:
//	      - path: /logs
//	        dir: true
type File struct {
	Home    ServerSpec   `yaml:"home" json:"home"`
	Servers []ServerSpec `yaml:"servers,omitempty" json:"servers,omitempty" validate:"dive"`
}

// ServerSpec describes one server in a world file.
type ServerSpec struct {
	IP            string     `yaml:"ip" json:"ip" validate:"required,ipv4"`
	Name          string     `yaml:"name" json:"name"`
	SecurityLevel int        `yaml:"security_level,omitempty" json:"security_level,omitempty" validate:"min=0,max=100"`
	Users         []User     `yaml:"users,omitempty" json:"users,omitempty" validate:"dive"`
	Network       []string   `yaml:"network,omitempty" json:"network,omitempty" validate:"dive,ipv4"`
	Files         []FileSpec `yaml:"files,omitempty" json:"files,omitempty" validate:"dive"`
}

// FileSpec describes one entry of a server's file system. Parent directories
// are created implicitly, so Dir is only needed for empty directories.
type FileSpec struct {
	Path    string `yaml:"path" json:"path" validate:"required,startswith=/"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
	Dir     bool   `yaml:"dir,omitempty" json:"dir,omitempty"`
}

var validate = validator.New()

// Validate checks struct tags and cross-entry constraints: IPs must be unique
// across the whole file.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid world file: %w", err)
	}

	seen := map[string]bool{f.Home.IP: true}
	for _, s := range f.Servers {
		if seen[s.IP] {
			return fmt.Errorf("invalid world file: duplicate server ip %s", s.IP)
		}
		seen[s.IP] = true
	}
	return nil
}

// ============================================================================
// Loading and Saving
// ============================================================================

// Load reads, validates and builds the world file at path.
func Load(path string) (*World, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

// ReadFile reads and validates the world file at path without building it.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML world document. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse world file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Save writes f to path as YAML, creating the parent directory if needed.
func Save(path string, f *File) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create world directory: %w", err)
		}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal world file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write world file: %w", err)
	}
	return nil
}

// ============================================================================
// Conversion
// ============================================================================

// Build turns the file into a live world. Every node path in the built trees
// is canonical.
func (f *File) Build() (*World, error) {
	home, err := f.Home.Build()
	if err != nil {
		return nil, err
	}

	servers := make([]*Server, 0, len(f.Servers)+1)
	servers = append(servers, home)
	for i := range f.Servers {
		s, err := f.Servers[i].Build()
		if err != nil {
			return nil, err
		}
		servers = append(servers, s)
	}

	reg, err := NewRegistry(servers...)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	return &World{Home: home, Registry: reg}, nil
}

// Build creates the server s describes.
func (s *ServerSpec) Build() (*Server, error) {
	server := NewServer(s.IP, s.Name, s.Users...)
	server.SecurityLevel = s.SecurityLevel
	server.Network = append([]string(nil), s.Network...)

	for _, fs := range s.Files {
		var err error
		if fs.Dir {
			_, err = vfs.MkdirAll(fs.Path, server.FileSystem)
		} else {
			_, err = vfs.WriteFile(fs.Path, fs.Content, server.FileSystem)
		}
		if err != nil {
			return nil, fmt.Errorf("server %s: %s: %w", s.IP, fs.Path, err)
		}
	}
	return server, nil
}

// ToFile converts a live world back into its file representation.
func (w *World) ToFile() *File {
	f := &File{Home: SpecFromServer(w.Home)}
	for _, s := range w.Registry.List() {
		if s == w.Home {
			continue
		}
		f.Servers = append(f.Servers, SpecFromServer(s))
	}
	return f
}

// SpecFromServer converts a server into its file representation. Only empty
// directories are listed explicitly; the others are implied by their contents.
func SpecFromServer(s *Server) ServerSpec {
	spec := ServerSpec{
		IP:            s.IP,
		Name:          s.Name,
		SecurityLevel: s.SecurityLevel,
		Users:         append([]User(nil), s.Users...),
		Network:       append([]string(nil), s.Network...),
	}

	s.FileSystem.Walk(func(n *vfs.Node) bool {
		switch {
		case n == s.FileSystem:
		case n.IsFile():
			spec.Files = append(spec.Files, FileSpec{Path: n.Path, Content: n.Content})
		case len(n.Children) == 0:
			spec.Files = append(spec.Files, FileSpec{Path: n.Path, Dir: true})
		}
		return true
	})
	return spec
}
