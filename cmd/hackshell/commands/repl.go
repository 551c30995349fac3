package commands

import (
	"context"
	stderrors "errors"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hackshell/hackshell/internal/cli/output"
	"github.com/hackshell/hackshell/internal/logger"
	"github.com/hackshell/hackshell/pkg/session"
	"github.com/hackshell/hackshell/pkg/shell"
)

const (
	// clearScreen moves the cursor home and erases the display.
	clearScreen = "\033[H\033[2J"

	// knownCommand lists the servers met so far. It is a front end command
	// and never reaches the dispatcher.
	knownCommand = ":known"

	passwordPrompt = "Password: "
	guestUser      = "guest"
)

// repl drives one session from a terminal.
type repl struct {
	dispatcher *shell.Dispatcher
	out        *output.Printer
	prompt     string

	// readPassword reads a masked password. Nil disables the prompt, so
	// "login <user>" reports its usage instead.
	readPassword func(prompt string) (string, error)
}

func newREPL(d *shell.Dispatcher, out *output.Printer, prompt string) *repl {
	return &repl{dispatcher: d, out: out, prompt: prompt}
}

// Run reads lines until exit, EOF or ctx is cancelled. History is kept in
// historyFile when it is set.
func (r *repl) Run(ctx context.Context, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.renderPrompt(),
		HistoryFile:       historyFile,
		AutoComplete:      r.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	r.readPassword = func(prompt string) (string, error) {
		pw, err := rl.ReadPassword(prompt)
		return string(pw), err
	}

	go func() {
		<-ctx.Done()
		_ = rl.Close()
	}()

	for {
		rl.SetPrompt(r.renderPrompt())
		line, err := rl.Readline()
		switch {
		case ctx.Err() != nil:
			return nil
		case stderrors.Is(err, readline.ErrInterrupt):
			continue
		case stderrors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		if !r.handle(ctx, line) {
			return nil
		}
	}
}

// handle runs one input line and reports whether the session goes on.
func (r *repl) handle(ctx context.Context, line string) bool {
	tokens := shell.Tokenize(line)
	if len(tokens) == 0 {
		return true
	}

	switch tokens[0] {
	case "exit", "quit":
		return false
	case knownCommand:
		r.printKnown()
		return true
	}

	if tokens[0] == "login" && len(tokens) == 2 && r.readPassword != nil {
		password, err := r.readPassword(passwordPrompt)
		if err != nil {
			logger.Debug("Password prompt aborted", logger.KeyError, err)
			return true
		}
		tokens = append(tokens, password)
	}

	res := r.dispatcher.RunTokens(ctx, tokens)
	if res.Clear {
		r.out.Printf("%s", clearScreen)
	}
	r.out.Reply(res.Text(), res.Err != nil && !stderrors.Is(res.Err, session.ErrEmptyDirectory))
	return true
}

// renderPrompt fills the prompt template with the session state.
func (r *repl) renderPrompt() string {
	sess := r.dispatcher.Session()
	user, ok := sess.Whoami()
	if !ok {
		user = guestUser
	}
	return strings.NewReplacer(
		"{user}", user,
		"{ip}", sess.Current.IP,
		"{path}", sess.Pwd(),
	).Replace(r.prompt)
}

// printKnown lists the known servers with the credentials that worked.
func (r *repl) printKnown() {
	table := output.NewTableData("IP", "Name", "Credentials")
	for _, k := range r.dispatcher.Session().KnownServers() {
		creds := make([]string, 0, len(k.Users))
		for _, u := range k.Users {
			creds = append(creds, u.Username+":"+u.Password)
		}
		sort.Strings(creds)
		table.AddRow(k.IP, k.Name, strings.Join(creds, ", "))
	}
	_ = output.PrintTable(r.out.Writer(), table)
}

// completer suggests game verbs, front end commands and, for verbs that take
// a path, the names in the working directory.
func (r *repl) completer() *readline.PrefixCompleter {
	names := readline.PcItemDynamic(func(string) []string {
		sess := r.dispatcher.Session()
		var entries []string
		sess.Registry().View(func() {
			entries, _ = sess.Ls("")
		})
		return entries
	})

	pathVerbs := map[string]bool{"cd": true, "ls": true, "cat": true, "rm": true, "mv": true, "cp": true, "rmdir": true}

	var items []readline.PrefixCompleterInterface
	for _, verb := range shell.Verbs() {
		if pathVerbs[verb] {
			items = append(items, readline.PcItem(verb, names))
			continue
		}
		items = append(items, readline.PcItem(verb))
	}
	items = append(items, readline.PcItem(knownCommand), readline.PcItem("exit"), readline.PcItem("quit"))
	return readline.NewPrefixCompleter(items...)
}
