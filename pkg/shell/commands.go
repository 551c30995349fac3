package shell

import (
	"fmt"
	"strings"
)

// handlerFunc runs one verb. args excludes the verb and holds at least
// MinArgs tokens.
type handlerFunc func(d *Dispatcher, args []string) (string, error)

// command is one entry of the verb table.
type command struct {
	Name    string
	Usage   string
	Summary string
	MinArgs int
	Handler handlerFunc

	// Clears marks verbs that ask the terminal to wipe the screen.
	Clears bool
}

// Fixed replies of the verbs that are routed but not simulated.
const (
	scanOutput        = "Scanning for open ports... no open ports found"
	hackOutput        = "Hack failed: no exploitable services found"
	scanNetworkOutput = "Scanning network... no connected servers found"
)

// commandTable lists the verbs in help order.
var commandTable = []*command{
	{Name: "help", Usage: "help", Summary: "Show this help message", Handler: (*Dispatcher).help},
	{Name: "connect", Usage: "connect <ip>", Summary: "Connect to a server", MinArgs: 1, Handler: (*Dispatcher).connect},
	{Name: "disconnect", Usage: "disconnect", Summary: "Disconnect from the server", Handler: (*Dispatcher).disconnect},
	{Name: "login", Usage: "login <username> <password>", Summary: "Log in to the server", MinArgs: 2, Handler: (*Dispatcher).login},
	{Name: "logout", Usage: "logout", Summary: "Log out of the server", Handler: (*Dispatcher).logout},
	{Name: "scan", Usage: "scan", Summary: "Scan the server for open ports", Handler: fixed(scanOutput)},
	{Name: "hack", Usage: "hack", Summary: "Attempt to hack the server", Handler: fixed(hackOutput)},
	{Name: "scan-network", Usage: "scan-network", Summary: "Scan the network for connected servers", Handler: fixed(scanNetworkOutput)},
	{Name: "cd", Usage: "cd <directory>", Summary: "Change directory", MinArgs: 1, Handler: (*Dispatcher).cd},
	{Name: "ls", Usage: "ls", Summary: "List files in the current directory", Handler: (*Dispatcher).ls},
	{Name: "cat", Usage: "cat <filename>", Summary: "Print the contents of a file", MinArgs: 1, Handler: (*Dispatcher).cat},
	{Name: "clear", Usage: "clear", Summary: "Clear the terminal screen", Handler: fixed(""), Clears: true},
	{Name: "rm", Usage: "rm <filename>", Summary: "Remove a file", MinArgs: 1, Handler: (*Dispatcher).rm},
	{Name: "mv", Usage: "mv <filename1> <filename2>", Summary: "Move a file", MinArgs: 2, Handler: (*Dispatcher).mv},
	{Name: "cp", Usage: "cp <filename1> <filename2>", Summary: "Copy a file", MinArgs: 2, Handler: (*Dispatcher).cp},
	{Name: "touch", Usage: "touch <filename>", Summary: "Create a new file", MinArgs: 1, Handler: (*Dispatcher).touch},
	{Name: "mkdir", Usage: "mkdir <directory>", Summary: "Create a new directory", MinArgs: 1, Handler: (*Dispatcher).mkdir},
	{Name: "rmdir", Usage: "rmdir <directory>", Summary: "Remove a directory", MinArgs: 1, Handler: (*Dispatcher).rmdir},
	{Name: "pwd", Usage: "pwd", Summary: "Print the current working directory", Handler: (*Dispatcher).pwd},
	{Name: "whoami", Usage: "whoami", Summary: "Print the current user", Handler: (*Dispatcher).whoami},
}

// commandIndex maps verbs to table entries and helpText lists them. Both are
// built once in init and never mutated.
var (
	commandIndex map[string]*command
	helpText     string
)

func init() {
	commandIndex = make(map[string]*command, len(commandTable))

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commandTable {
		commandIndex[c.Name] = c
		fmt.Fprintf(&b, "    %s - %s\n", c.Usage, c.Summary)
	}
	helpText = strings.TrimSuffix(b.String(), "\n")
}

// Verbs returns every known verb in help order.
func Verbs() []string {
	out := make([]string, len(commandTable))
	for i, c := range commandTable {
		out[i] = c.Name
	}
	return out
}

func fixed(output string) handlerFunc {
	return func(*Dispatcher, []string) (string, error) {
		return output, nil
	}
}

// optional returns the first argument, or "" when there is none.
func optional(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// ============================================================================
// Session Verbs
// ============================================================================

// help prints every verb, or the usage of a single verb.
func (d *Dispatcher) help(args []string) (string, error) {
	if len(args) > 0 {
		if c, ok := commandIndex[args[0]]; ok {
			return fmt.Sprintf("%s - %s", c.Usage, c.Summary), nil
		}
	}
	return helpText, nil
}

func (d *Dispatcher) connect(args []string) (string, error) {
	if err := d.session.Connect(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to %s (%s)", d.session.Current.Name, d.session.Current.IP), nil
}

func (d *Dispatcher) disconnect([]string) (string, error) {
	ip := d.session.Current.IP
	if err := d.session.Disconnect(); err != nil {
		return "", err
	}
	return "Disconnected from " + ip, nil
}

func (d *Dispatcher) login(args []string) (string, error) {
	if err := d.session.Login(args[0], args[1]); err != nil {
		return "", err
	}
	return "Logged in as " + args[0], nil
}

func (d *Dispatcher) logout([]string) (string, error) {
	ip := d.session.Current.IP
	if err := d.session.Logout(); err != nil {
		return "", err
	}
	return "Logged out of " + ip, nil
}

func (d *Dispatcher) pwd([]string) (string, error) {
	return d.session.Pwd(), nil
}

func (d *Dispatcher) whoami([]string) (string, error) {
	name, ok := d.session.Whoami()
	if !ok {
		return notLoggedIn, nil
	}
	return name, nil
}

// ============================================================================
// File System Verbs
// ============================================================================

func (d *Dispatcher) cd(args []string) (string, error) {
	return "", d.session.Cd(args[0])
}

func (d *Dispatcher) ls(args []string) (string, error) {
	names, err := d.session.Ls(optional(args))
	if err != nil {
		return "", err
	}
	return strings.Join(names, " "), nil
}

func (d *Dispatcher) cat(args []string) (string, error) {
	return d.session.Cat(args[0])
}

func (d *Dispatcher) rm(args []string) (string, error) {
	return "", d.session.Rm(args[0])
}

func (d *Dispatcher) mv(args []string) (string, error) {
	return "", d.session.Mv(args[0], args[1])
}

func (d *Dispatcher) cp(args []string) (string, error) {
	return "", d.session.Cp(args[0], args[1])
}

func (d *Dispatcher) touch(args []string) (string, error) {
	return "", d.session.Touch(args[0])
}

func (d *Dispatcher) mkdir(args []string) (string, error) {
	return "", d.session.Mkdir(args[0])
}

func (d *Dispatcher) rmdir(args []string) (string, error) {
	return "", d.session.Rmdir(args[0])
}
