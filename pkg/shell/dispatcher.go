package shell

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/hackshell/hackshell/internal/logger"
	"github.com/hackshell/hackshell/internal/telemetry"
	"github.com/hackshell/hackshell/pkg/errors"
	"github.com/hackshell/hackshell/pkg/metrics"
	"github.com/hackshell/hackshell/pkg/session"
)

// unknownVerb is the metrics label for verbs outside the command table.
const unknownVerb = "unknown"

// Options configures a Dispatcher.
type Options struct {
	// Metrics receives per-command observations. Nil disables collection.
	Metrics metrics.ShellMetrics
}

// Result is the structured outcome of one command line.
type Result struct {
	// Verb is the first token of the line, empty for blank lines.
	Verb string

	// Output is the handler's reply when Err is nil.
	Output string

	// Err is the engine error the handler reported.
	Err error

	// Clear asks the terminal to wipe the screen before printing.
	Clear bool
}

// Text returns the display string of the result.
func (r Result) Text() string {
	if r.Err != nil {
		return FormatError(r.Err)
	}
	return r.Output
}

// Dispatcher routes command lines to handlers operating on one session.
// Commands must be run one at a time. Each handler runs inside the registry's
// Update so other goroutines can read the file systems through View.
type Dispatcher struct {
	session *session.Session
	metrics metrics.ShellMetrics
}

// NewDispatcher creates a dispatcher bound to sess.
func NewDispatcher(sess *session.Session, opts Options) *Dispatcher {
	d := &Dispatcher{
		session: sess,
		metrics: opts.Metrics,
	}
	metrics.SetKnownServers(d.metrics, len(sess.Known))
	metrics.SetRegistrySize(d.metrics, sess.Registry().Len())
	return d
}

// Session returns the session commands operate on.
func (d *Dispatcher) Session() *session.Session {
	return d.session
}

// Execute runs line and returns its display string. It never fails.
func (d *Dispatcher) Execute(line string) string {
	return d.Run(context.Background(), line).Text()
}

// Run tokenizes line, dispatches it and reports the structured result.
func (d *Dispatcher) Run(ctx context.Context, line string) Result {
	return d.RunTokens(ctx, Tokenize(line))
}

// RunTokens dispatches an already tokenized line. Front ends use it when an
// argument was read separately, such as a masked password, and must not be
// split on whitespace.
func (d *Dispatcher) RunTokens(ctx context.Context, tokens []string) Result {
	if len(tokens) == 0 {
		return Result{}
	}
	verb, args := tokens[0], tokens[1:]
	start := time.Now()

	cmd, ok := commandIndex[verb]
	if !ok {
		err := errors.NewCommandNotFoundError(verb)
		logger.Debug("Unknown command",
			logger.KeySessionID, d.session.ID,
			logger.KeyCommand, verb)
		metrics.ObserveCommand(d.metrics, unknownVerb, resultLabel(err), time.Since(start))
		return Result{Verb: verb, Err: err}
	}

	username, _ := d.session.Whoami()
	ctx, span := telemetry.StartCommandSpan(ctx, verb, len(args),
		telemetry.SessionID(d.session.ID),
		telemetry.ServerIP(d.session.Current.IP),
		telemetry.Username(username),
		telemetry.LoggedIn(d.session.IsLoggedIn()),
		telemetry.Cwd(d.session.CurrentPath),
	)
	defer span.End()

	traceID, spanID := telemetry.SpanIDs(ctx)
	ctx = logger.WithContext(ctx, &logger.LogContext{
		SessionID: d.session.ID,
		Command:   verb,
		ServerIP:  d.session.Current.IP,
		Username:  username,
		TraceID:   traceID,
		SpanID:    spanID,
	})

	res := Result{Verb: verb, Clear: cmd.Clears}
	if len(args) < cmd.MinArgs {
		res.Err = errors.NewInvalidArgumentError("usage: " + cmd.Usage)
	} else {
		before := d.snapshot()
		d.session.Registry().Update(func() {
			res.Output, res.Err = cmd.Handler(d, args)
		})
		d.recordTransition(ctx, before)
	}

	d.observe(ctx, cmd, res.Err, start)
	return res
}

// state is the part of the session a command can move between.
type state struct {
	ip       string
	loggedIn bool
}

func (d *Dispatcher) snapshot() state {
	return state{ip: d.session.Current.IP, loggedIn: d.session.IsLoggedIn()}
}

// recordTransition adds span events for the server and login changes made
// by the command that just ran.
func (d *Dispatcher) recordTransition(ctx context.Context, before state) {
	if ip := d.session.Current.IP; ip != before.ip {
		telemetry.AddEvent(ctx, telemetry.EventServerChanged, telemetry.ServerIP(ip))
	}

	switch loggedIn := d.session.LoggedIn[before.ip]; {
	case loggedIn && !before.loggedIn:
		user := d.session.CurrentUser[before.ip]
		telemetry.AddEvent(ctx, telemetry.EventLoggedIn, telemetry.ServerIP(before.ip), telemetry.Username(user.Username))
	case !loggedIn && before.loggedIn:
		telemetry.AddEvent(ctx, telemetry.EventLoggedOut, telemetry.ServerIP(before.ip))
	}
}

// observe reports the outcome of a known command to logs, traces and metrics.
func (d *Dispatcher) observe(ctx context.Context, cmd *command, err error, start time.Time) {
	label := resultLabel(err)

	if err != nil && !stderrors.Is(err, session.ErrEmptyDirectory) {
		telemetry.RecordError(ctx, err)
		telemetry.SetAttributes(ctx, telemetry.ErrorCode(label))
		logger.DebugCtx(ctx, "Command failed",
			logger.KeyResult, label,
			logger.KeyError, err,
			logger.KeyDurationMs, logger.Duration(start))
	} else {
		logger.DebugCtx(ctx, "Command completed",
			logger.KeyResult, label,
			logger.KeyDurationMs, logger.Duration(start))
	}

	metrics.ObserveCommand(d.metrics, cmd.Name, label, time.Since(start))
	if cmd.Name == "login" && (err == nil || errors.Is(err, errors.ErrInvalidCredentials)) {
		metrics.RecordLogin(d.metrics, err == nil)
	}
	metrics.SetKnownServers(d.metrics, len(d.session.Known))
	metrics.SetRegistrySize(d.metrics, d.session.Registry().Len())
}
