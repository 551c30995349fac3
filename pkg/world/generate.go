package world

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/hackshell/hackshell/pkg/vfs"
)

// DefaultServerCount is the number of remote servers generated when none is
// configured.
const DefaultServerCount = 100

// HomeUsername is the account the player owns on the generated home server.
const HomeUsername = "player"

const alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	businessPrefixes = []string{
		"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Vandelay", "Soylent",
		"Stark", "Wayne", "Cyberdyne", "Tyrell", "Aperture", "Oscorp", "Wonka",
	}
	businessSuffixes = []string{
		"Industries", "Corp", "Systems", "Labs", "Holdings", "Logistics",
		"Dynamics", "Analytics", "Solutions", "Group",
	}
	deviceTypes = []string{
		"laptop", "desktop", "server", "mainframe", "workstation", "router",
		"NAS", "media center", "phone", "tablet",
	}
	leet = strings.NewReplacer("a", "4", "e", "3", "i", "1", "o", "0", "s", "5", "t", "7")
)

// GenerateOptions controls world generation.
type GenerateOptions struct {
	// Servers is the number of remote servers. Zero means DefaultServerCount.
	Servers int

	// Seed makes generation deterministic. Zero picks a time-based seed.
	Seed uint64
}

// generator carries the random source and the set of IPs handed out so far.
type generator struct {
	rng  *rand.Rand
	used map[string]bool
}

// Generate builds a random world: a home server owned by HomeUsername and
// opts.Servers remote servers, all with unique IPv4 addresses.
func Generate(opts GenerateOptions) *World {
	n := opts.Servers
	if n <= 0 {
		n = DefaultServerCount
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &generator{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		used: make(map[string]bool, n+1),
	}

	remotes := make([]*Server, 0, n)
	for range n {
		remotes = append(remotes, g.server())
	}
	home := g.home(remotes)

	// IPs are unique by construction so NewRegistry cannot fail here.
	reg, _ := NewRegistry(append([]*Server{home}, remotes...)...)
	return &World{Home: home, Registry: reg}
}

// ============================================================================
// Random Primitives
// ============================================================================

// number returns a uniform integer in [lo, hi].
func (g *generator) number(lo, hi int) int {
	return g.rng.IntN(hi-lo+1) + lo
}

func (g *generator) pick(list []string) string {
	return list[g.rng.IntN(len(list))]
}

func (g *generator) randomString(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphanumeric[g.rng.IntN(len(alphanumeric))])
	}
	return b.String()
}

func (g *generator) randomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		g.number(1, 255), g.number(0, 255), g.number(0, 255), g.number(0, 255))
}

// newIP returns a random IPv4 address not handed out before.
func (g *generator) newIP() string {
	ip := g.randomIP()
	for g.used[ip] {
		ip = g.randomIP()
	}
	g.used[ip] = true
	return ip
}

func (g *generator) personName() (first, last string) {
	return g.pick(firstNames), g.pick(lastNames)
}

func (g *generator) businessName() string {
	return g.pick(businessPrefixes) + " " + g.pick(businessSuffixes)
}

// ============================================================================
// Servers
// ============================================================================

func (g *generator) server() *Server {
	ip := g.newIP()

	// Weighted toward "admin".
	first, last := g.personName()
	username := "admin"
	switch chance := g.number(1, 100); {
	case chance <= 70:
	case chance <= 90:
		username = strings.ToLower(first)
	default:
		username = strings.ToLower(last)
	}

	var password string
	switch chance := g.number(1, 100); {
	case chance <= 50:
		password = g.randomString(10)
	case chance <= 60:
		password, _ = g.personName()
	case chance <= 70:
		_, password = g.personName()
	default:
		password = g.pick(businessPrefixes)
	}
	if g.number(1, 100) <= 50 {
		password = leet.Replace(password)
	}

	var owner, business string
	if g.number(1, 100) <= 25 {
		business = g.businessName()
		owner = business
	} else {
		owner = first + " " + last
	}

	s := NewServer(ip, owner+"'s "+g.pick(deviceTypes), User{Username: username, Password: password})
	s.SecurityLevel = g.number(1, 100)
	g.populate(s, username, password, owner, business)
	return s
}

// populate fills a server with a small flavor file system. Some servers leak
// their own credentials in a note.
func (g *generator) populate(s *Server, username, password, owner, business string) {
	root := s.FileSystem
	home := "/home/" + username

	write := func(path, content string) {
		// Generated paths are well formed, so errors cannot occur.
		_, _ = vfs.WriteFile(path, content, root)
	}
	mkdir := func(path string) {
		_, _ = vfs.MkdirAll(path, root)
	}

	write("/etc/hostname", strings.ToLower(strings.ReplaceAll(s.Name, " ", "-")))
	write("/etc/passwd", fmt.Sprintf("root:x:0:0:root:/root:/bin/sh\n%s:x:1000:1000:%s:%s:/bin/sh", username, owner, home))
	write("/var/log/auth.log", fmt.Sprintf("sshd: accepted password for %s from %s", username, g.randomIP()))
	mkdir("/tmp")
	mkdir(home + "/downloads")

	if business != "" {
		write(home+"/documents/quarterly_report.txt", fmt.Sprintf("%s quarterly report\nRevenue: $%d,%03d", business, g.number(1, 999), g.number(0, 999)))
		write("/srv/www/index.html", fmt.Sprintf("<h1>Welcome to %s</h1>", business))
	} else {
		write(home+"/documents/todo.txt", "- call mom\n- renew passport\n- change passwords")
	}

	if g.number(1, 100) <= 30 {
		write(home+"/passwords.txt", fmt.Sprintf("%s / %s", username, password))
	}
}

// home builds the player's home server. Its notes list a few reachable
// servers to get started.
func (g *generator) home(remotes []*Server) *Server {
	s := NewServer(g.newIP(), "home", User{Username: HomeUsername, Password: g.randomString(10)})
	s.SecurityLevel = 100

	var targets strings.Builder
	for i, r := range remotes {
		if i == 3 {
			break
		}
		s.Network = append(s.Network, r.IP)
		fmt.Fprintf(&targets, "%s  %s\n", r.IP, r.Name)
	}

	root := s.FileSystem
	_, _ = vfs.WriteFile("/readme.txt", "Welcome home. Type 'help' to list the available commands.", root)
	_, _ = vfs.WriteFile("/home/"+HomeUsername+"/targets.txt", targets.String(), root)
	_, _ = vfs.MkdirAll("/home/"+HomeUsername+"/loot", root)
	return s
}
