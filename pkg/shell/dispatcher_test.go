package shell

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackshell/hackshell/pkg/errors"
	promMetrics "github.com/hackshell/hackshell/pkg/metrics/prometheus"
	"github.com/hackshell/hackshell/pkg/session"
	"github.com/hackshell/hackshell/pkg/vfs/vfstest"
	"github.com/hackshell/hackshell/pkg/world"
)

const (
	homeIP   = "10.0.0.1"
	remoteIP = "203.0.113.7"
)

func newTestDispatcher(t *testing.T, opts Options) *Dispatcher {
	t.Helper()

	home := world.NewServer(homeIP, "home", world.User{Username: "player", Password: "pw"})
	home.FileSystem = vfstest.Tree(t, map[string]string{
		"/readme.txt": "welcome",
		"/projects/":  "",
	})

	remote := world.NewServer(remoteIP, "Acme Corp's mainframe", world.User{Username: "admin", Password: "hunter2"})
	remote.FileSystem = vfstest.Tree(t, map[string]string{
		"/etc/passwd":       "root:x:0:0",
		"/var/log/auth.log": "denied",
	})

	reg, err := world.NewRegistry(home, remote)
	require.NoError(t, err)

	sess, err := session.New(home, reg, session.Options{})
	require.NoError(t, err)
	return NewDispatcher(sess, opts)
}

// run executes each line in order and returns the output of the last one.
func run(d *Dispatcher, lines ...string) string {
	var out string
	for _, line := range lines {
		out = d.Execute(line)
	}
	return out
}

// ============================================================================
// Routing
// ============================================================================

func TestExecute_BlankLine(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	assert.Equal(t, "", d.Execute(""))
	assert.Equal(t, "", d.Execute("   "))

	res := d.Run(context.Background(), "  ")
	assert.Equal(t, Result{}, res)
}

func TestExecute_UnknownCommand(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	assert.Equal(t, "Command not found: frobnicate", d.Execute("frobnicate now"))

	res := d.Run(context.Background(), "frobnicate")
	assert.True(t, errors.Is(res.Err, errors.ErrCommandNotFound))
	assert.Equal(t, "frobnicate", res.Verb)
}

func TestExecute_MissingArguments(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	for _, c := range commandTable {
		if c.MinArgs == 0 {
			continue
		}
		t.Run(c.Name, func(t *testing.T) {
			res := d.Run(context.Background(), c.Name)
			assert.True(t, errors.Is(res.Err, errors.ErrInvalidArgument))
			assert.Equal(t, "usage: "+c.Usage, res.Text())
		})
	}
}

func TestExecute_Help(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	out := d.Execute("help")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(commandTable)+1)
	assert.Equal(t, "Available commands:", lines[0])
	assert.Equal(t, "    help - Show this help message", lines[1])
	assert.Equal(t, "    login <username> <password> - Log in to the server", lines[4])
	assert.Equal(t, "    whoami - Print the current user", lines[len(lines)-1])

	assert.Equal(t, "cp <filename1> <filename2> - Copy a file", d.Execute("help cp"))
	assert.Equal(t, out, d.Execute("help nonsense"))
}

func TestVerbs(t *testing.T) {
	verbs := Verbs()
	assert.Equal(t, []string{
		"help", "connect", "disconnect", "login", "logout", "scan", "hack",
		"scan-network", "cd", "ls", "cat", "clear", "rm", "mv", "cp", "touch",
		"mkdir", "rmdir", "pwd", "whoami",
	}, verbs)
}

func TestExecute_FixedReplies(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	assert.Equal(t, scanOutput, d.Execute("scan"))
	assert.Equal(t, hackOutput, d.Execute("hack"))
	assert.Equal(t, scanNetworkOutput, d.Execute("scan-network"))
}

func TestRun_Clear(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	res := d.Run(context.Background(), "clear")
	assert.True(t, res.Clear)
	assert.Empty(t, res.Output)
	assert.NoError(t, res.Err)

	assert.False(t, d.Run(context.Background(), "pwd").Clear)
}

// ============================================================================
// Session Verbs
// ============================================================================

func TestExecute_ConnectLoginLogout(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	assert.Equal(t, "Server not found: 1.2.3.4", d.Execute("connect 1.2.3.4"))
	assert.Equal(t, "Cannot disconnect from the home server", d.Execute("disconnect"))
	assert.Equal(t, "Cannot log out of the home server", d.Execute("logout"))

	assert.Equal(t, "Connected to Acme Corp's mainframe (203.0.113.7)", d.Execute("connect "+remoteIP))
	assert.Equal(t, notLoggedIn, d.Execute("whoami"))
	assert.Equal(t, notLoggedIn, d.Execute("ls"))
	assert.Equal(t, "Already logged out", d.Execute("logout"))

	assert.Equal(t, "Invalid username or password", d.Execute("login admin wrong"))
	assert.Equal(t, "Logged in as admin", d.Execute(`login "admin" 'hunter2'`))
	assert.Equal(t, "Already logged in", d.Execute("login admin hunter2"))
	assert.Equal(t, "admin", d.Execute("whoami"))
	assert.Equal(t, "etc var", d.Execute("ls"))

	assert.Equal(t, "Disconnected from "+remoteIP, d.Execute("disconnect"))
	assert.Equal(t, "player", d.Execute("whoami"))

	// Login survives a disconnect.
	d.Execute("connect " + remoteIP)
	assert.Equal(t, "admin", d.Execute("whoami"))

	assert.Equal(t, "Logged out of "+remoteIP, d.Execute("logout"))
	assert.Same(t, d.Session().Home, d.Session().Current)
}

func TestRunTokens_PasswordWithSpaces(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	spaced := world.NewServer("198.51.100.9", "vault", world.User{Username: "ops", Password: "correct horse"})
	require.NoError(t, d.Session().Registry().Add(spaced))

	assert.Equal(t, "Connected to vault (198.51.100.9)", d.Execute("connect 198.51.100.9"))
	assert.Equal(t, "Invalid username or password", d.Execute("login ops correct horse"))

	res := d.RunTokens(context.Background(), []string{"login", "ops", "correct horse"})
	require.NoError(t, res.Err)
	assert.Equal(t, "Logged in as ops", res.Output)
	assert.Equal(t, Result{}, d.RunTokens(context.Background(), nil))
}

func TestExecute_LoginEmptyPassword(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	kiosk := world.NewServer("198.51.100.10", "kiosk", world.User{Username: "guest"})
	require.NoError(t, d.Session().Registry().Add(kiosk))

	d.Execute("connect 198.51.100.10")
	assert.Equal(t, "usage: login <username> <password>", d.Execute("login guest"))
	assert.Equal(t, "Logged in as guest", d.Execute(`login guest ""`))
	assert.Equal(t, "guest", d.Execute("whoami"))
}

func TestExecute_DisconnectRestoresHomePath(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	out := run(d, "cd projects", "connect "+remoteIP, "pwd")
	assert.Equal(t, "/", out)

	out = run(d, "disconnect", "pwd")
	assert.Equal(t, "/projects", out)
}

// ============================================================================
// File System Verbs
// ============================================================================

func TestExecute_FileSystemErrors(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	tests := []struct {
		line string
		want string
	}{
		{"cat nope", "/nope: No such file or directory"},
		{"cat projects", "/projects: Is a directory"},
		{"cd readme.txt", "/readme.txt: Not a directory"},
		{"cd /missing", "/missing: No such file or directory"},
		{"rm projects", "/projects: Is a directory"},
		{"rmdir readme.txt", "/readme.txt: Not a directory"},
		{"cp projects x", "/projects: Is a directory"},
		{"cp readme.txt readme.txt", "/readme.txt: File exists"},
		{"touch /nowhere/file", "/nowhere: No such file or directory"},
		{"ls projects", "No files found"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Execute(tt.line))
		})
	}
}

func TestExecute_CdKeepsPathOnFailure(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	run(d, "cd projects")
	d.Execute("cd /readme.txt")
	assert.Equal(t, "/projects", d.Execute("pwd"))

	assert.Equal(t, "", d.Execute("cd .."))
	assert.Equal(t, "/", d.Execute("pwd"))
	d.Execute("cd ../../..")
	assert.Equal(t, "/", d.Execute("pwd"))
}

func TestExecute_CopyAndMove(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	assert.Equal(t, "", d.Execute("cp readme.txt projects"))
	assert.Equal(t, "welcome", d.Execute("cat /projects/readme.txt"))

	assert.Equal(t, "", d.Execute("mv readme.txt notes.txt"))
	assert.Equal(t, "welcome", d.Execute("cat notes.txt"))
	assert.Equal(t, "/readme.txt: No such file or directory", d.Execute("cat readme.txt"))
	assert.Equal(t, "notes.txt projects", d.Execute("ls"))
}

// End-to-end script: the working directory is removed from under the player
// and the next listing fails without crashing.
func TestExecute_RemoveWorkingDirectory(t *testing.T) {
	d := newTestDispatcher(t, Options{})

	assert.Equal(t, "", d.Execute("mkdir docs"))
	assert.Equal(t, "", d.Execute("cd docs"))
	assert.Equal(t, "", d.Execute("touch note.txt"))
	assert.Equal(t, "note.txt", d.Execute("ls"))
	assert.Equal(t, "", d.Execute("cat note.txt"))
	assert.Equal(t, "", d.Execute("rmdir /docs"))
	assert.Equal(t, "/docs", d.Execute("pwd"))

	res := d.Run(context.Background(), "ls")
	assert.True(t, errors.IsNotFoundError(res.Err))
	assert.Equal(t, "/docs: No such file or directory", res.Text())

	// Absolute paths keep working.
	assert.Equal(t, "welcome", d.Execute("cat /readme.txt"))
	assert.Equal(t, "", d.Execute("cd /"))
	assert.Equal(t, "projects readme.txt", d.Execute("ls"))
}

// ============================================================================
// Metrics
// ============================================================================

func TestRun_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	d := newTestDispatcher(t, Options{Metrics: promMetrics.NewShellMetricsWith(reg)})

	run(d, "ls", "ls", "cat nope", "frobnicate", "connect "+remoteIP, "login admin bad", "login admin hunter2")

	count := func(name string) int {
		mfs, err := reg.Gather()
		require.NoError(t, err)
		for _, mf := range mfs {
			if mf.GetName() == name {
				return len(mf.GetMetric())
			}
		}
		return 0
	}

	// ls/ok, cat/NotFound, unknown/CommandNotFound, connect/ok,
	// login/InvalidCredentials, login/ok
	assert.Equal(t, 6, count("hackshell_commands_total"))
	assert.Equal(t, 2, count("hackshell_login_attempts_total"))

	known, err := testutil.GatherAndCount(reg, "hackshell_known_servers")
	require.NoError(t, err)
	assert.Equal(t, 1, known)
}

// ============================================================================
// Error Formatting
// ============================================================================

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "No files found", FormatError(session.ErrEmptyDirectory))
	assert.Equal(t, notLoggedIn, FormatError(errors.NewPermissionDeniedError(remoteIP)))
	assert.Equal(t, "/a: Directory not empty", FormatError(errors.NewDirectoryNotEmptyError("/a")))
	assert.Equal(t, "Server not found: 10.9.9.9", FormatError(errors.NewServerNotFoundError("10.9.9.9")))
	assert.Equal(t, "/servers: No such file or directory", FormatError(errors.NewNotFoundError("/servers", errors.ResourcePath)))
	assert.Equal(t, "Server not found: 10.9.9.9", FormatError(fmt.Errorf("connect: %w", errors.NewServerNotFoundError("10.9.9.9"))))
	assert.Equal(t, "touch: missing operand", FormatError(errors.NewInvalidArgumentError("touch: missing operand")))
	assert.Equal(t, "Error: boom", FormatError(stderrors.New("boom")))
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "empty", resultLabel(session.ErrEmptyDirectory))
	assert.Equal(t, "NotFound", resultLabel(errors.NewNotFoundError("/x", "path")))
	assert.Equal(t, "error", resultLabel(assert.AnError))
}
