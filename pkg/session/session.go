// Package session implements the per-player state machine: which server the
// player is on, where they are in its file system, and which servers they
// are authenticated on.
//
// Per server the player is in one of three states:
//
//	Unknown -> Known-LoggedOut   on Connect
//	Known-LoggedOut -> Known-LoggedIn   on Login
//	Known-LoggedIn -> Known-LoggedOut   on Logout (also returns home)
//
// The home server starts Known-LoggedIn and can be neither disconnected from
// nor logged out of.
package session

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/hackshell/hackshell/internal/logger"
	"github.com/hackshell/hackshell/pkg/errors"
	"github.com/hackshell/hackshell/pkg/vfs"
	"github.com/hackshell/hackshell/pkg/world"
)

// KnownServer is the player-visible digest of a server, recorded on first
// contact and never removed.
type KnownServer struct {
	IP   string
	Name string

	// Users holds every credential that successfully logged in.
	Users map[string]world.User
}

// Options tunes session behavior.
type Options struct {
	// Strict enables collision checks on touch, mkdir, cp, mv and rmdir.
	Strict bool
}

// Session is the mutable state of one player.
//
// A Session is not safe for concurrent use; commands must be executed one at
// a time.
type Session struct {
	// ID correlates log lines and traces of one session.
	ID string

	// Home is the player's own machine.
	Home *world.Server

	// Current is the server commands run against.
	Current *world.Server

	// CurrentPath is the canonical working directory on Current.
	CurrentPath string

	// HomePath is the working directory on Home, restored when returning home.
	HomePath string

	// LoggedIn maps a server IP to its authentication state.
	LoggedIn map[string]bool

	// CurrentUser maps a server IP to the account logged in on it.
	CurrentUser map[string]world.User

	// Known maps a server IP to its digest.
	Known map[string]*KnownServer

	registry *world.Registry
	fsOpts   vfs.Options
	log      *slog.Logger
}

// New creates a session connected and logged in to home. The registry is
// consulted by Connect; a nil registry holds only the home server.
func New(home *world.Server, registry *world.Registry, opts Options) (*Session, error) {
	if home == nil || home.FileSystem == nil {
		return nil, errors.NewInvalidArgumentError("session requires a home server with a file system")
	}
	if registry == nil {
		var err error
		if registry, err = world.NewRegistry(home); err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	s := &Session{
		ID:          id,
		Home:        home,
		Current:     home,
		CurrentPath: vfs.Separator,
		HomePath:    vfs.Separator,
		LoggedIn:    make(map[string]bool),
		CurrentUser: make(map[string]world.User),
		Known:       make(map[string]*KnownServer),
		registry:    registry,
		fsOpts:      vfs.Options{Strict: opts.Strict},
		log:         logger.With(logger.SessionID(id)),
	}

	user := home.DefaultUser()
	s.LoggedIn[home.IP] = true
	s.CurrentUser[home.IP] = user
	s.remember(home).Users[user.Username] = user

	s.log.Debug("Session started", logger.ServerIP(home.IP), logger.Username(user.Username))

	return s, nil
}

// Registry returns the server registry the session connects through.
func (s *Session) Registry() *world.Registry {
	return s.registry
}

// ============================================================================
// Connection State
// ============================================================================

// Connect switches to the server registered under ip and resets the working
// directory to its root. Login state is left untouched.
func (s *Session) Connect(ip string) error {
	server, err := s.registry.Get(ip)
	if err != nil {
		return err
	}

	if s.Current == s.Home {
		s.HomePath = s.CurrentPath
	}
	s.Current = server
	s.CurrentPath = vfs.Separator
	s.remember(server)

	s.log.Debug("Connected", logger.ServerIP(ip), logger.LoggedIn(s.LoggedIn[ip]))
	return nil
}

// Disconnect returns to the home server and its remembered working
// directory. Disconnecting while home is an InvariantViolation.
func (s *Session) Disconnect() error {
	if s.Current == s.Home {
		return errors.NewInvariantViolationError("cannot disconnect from the home server")
	}

	s.log.Debug("Disconnected", logger.ServerIP(s.Current.IP))
	s.goHome()
	return nil
}

// Login authenticates on the current server.
func (s *Session) Login(username, password string) error {
	ip := s.Current.IP
	if s.LoggedIn[ip] {
		return errors.NewAlreadyLoggedInError(ip)
	}

	user, ok := s.Current.Authenticate(username, password)
	if !ok {
		s.log.Debug("Login failed", logger.ServerIP(ip), logger.Username(username))
		return errors.NewInvalidCredentialsError(username)
	}

	s.LoggedIn[ip] = true
	s.CurrentUser[ip] = user
	s.remember(s.Current).Users[user.Username] = user

	s.log.Debug("Logged in", logger.ServerIP(ip), logger.Username(username))
	return nil
}

// Logout clears the login on the current server and returns home. The home
// server cannot be logged out of.
func (s *Session) Logout() error {
	ip := s.Current.IP
	if s.Current == s.Home {
		return errors.NewInvariantViolationError("cannot log out of the home server")
	}
	if !s.LoggedIn[ip] {
		return errors.NewAlreadyLoggedOutError(ip)
	}

	delete(s.LoggedIn, ip)
	delete(s.CurrentUser, ip)
	s.goHome()

	s.log.Debug("Logged out", logger.ServerIP(ip))
	return nil
}

// IsLoggedIn reports whether the player is authenticated on the current server.
func (s *Session) IsLoggedIn() bool {
	return s.LoggedIn[s.Current.IP]
}

// Whoami returns the username logged in on the current server.
func (s *Session) Whoami() (string, bool) {
	if !s.IsLoggedIn() {
		return "", false
	}
	return s.CurrentUser[s.Current.IP].Username, true
}

// Pwd returns the current working directory.
func (s *Session) Pwd() string {
	return s.CurrentPath
}

// KnownServers returns the digests of every server met so far, sorted by IP.
func (s *Session) KnownServers() []KnownServer {
	out := make([]KnownServer, 0, len(s.Known))
	for _, k := range s.Known {
		users := make(map[string]world.User, len(k.Users))
		for name, u := range k.Users {
			users[name] = u
		}
		out = append(out, KnownServer{IP: k.IP, Name: k.Name, Users: users})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IP < out[j].IP })
	return out
}

func (s *Session) goHome() {
	s.Current = s.Home
	s.CurrentPath = s.HomePath
}

// remember returns the digest for server, creating it on first contact.
func (s *Session) remember(server *world.Server) *KnownServer {
	k, ok := s.Known[server.IP]
	if !ok {
		k = &KnownServer{
			IP:    server.IP,
			Name:  server.Name,
			Users: make(map[string]world.User),
		}
		s.Known[server.IP] = k
	}
	return k
}
