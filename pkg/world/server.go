// Package world holds the simulated network: the servers a player can
// connect to, the registry that indexes them by IP address, and the loaders
// and generators that populate it before a session starts.
package world

import (
	"github.com/hackshell/hackshell/pkg/vfs"
)

// User is a credential pair accepted by a server. Passwords are compared by
// plain equality.
type User struct {
	Username string `yaml:"username" json:"username" mapstructure:"username" validate:"required"`
	Password string `yaml:"password" json:"password" mapstructure:"password"`
}

// Server is a simulated remote machine.
type Server struct {
	// IP is the unique registry key.
	IP string

	// Name is a display name such as "Jane Doe's laptop".
	Name string

	// Users lists the accepted credentials in order.
	Users []User

	// FileSystem is the root directory of the server's file store.
	FileSystem *vfs.Node

	// SecurityLevel is carried for display and content generation only.
	SecurityLevel int

	// Network lists the IPs reachable from this server.
	Network []string
}

// NewServer creates a server with an empty file system.
func NewServer(ip, name string, users ...User) *Server {
	return &Server{
		IP:         ip,
		Name:       name,
		Users:      users,
		FileSystem: vfs.NewRoot(),
	}
}

// Authenticate returns the user whose username and password both match.
func (s *Server) Authenticate(username, password string) (User, bool) {
	for _, u := range s.Users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return User{}, false
}

// DefaultUser is the first listed user, or "root" with an empty password when
// the server lists none.
func (s *Server) DefaultUser() User {
	if len(s.Users) == 0 {
		return User{Username: "root"}
	}
	return s.Users[0]
}
