package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/hackshell/hackshell/internal/cli/output"
	"github.com/hackshell/hackshell/internal/logger"
	"github.com/hackshell/hackshell/internal/telemetry"
	"github.com/hackshell/hackshell/pkg/api"
	"github.com/hackshell/hackshell/pkg/config"
	"github.com/hackshell/hackshell/pkg/metrics"
	promMetrics "github.com/hackshell/hackshell/pkg/metrics/prometheus"
	"github.com/hackshell/hackshell/pkg/session"
	"github.com/hackshell/hackshell/pkg/shell"
	"github.com/hackshell/hackshell/pkg/world"
)

var (
	playWorld   string
	playServers int
	playSeed    uint64
	playStrict  bool
	playWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game session",
	Long: `Start an interactive game session on your home machine.

Type 'help' inside the session to list the game commands, ':known' to list
the servers met so far and 'exit' to quit.

Flags override the matching configuration keys.

Examples:
  # Play in a freshly generated world
  hackshell play

  # Replay the same generated world
  hackshell play --seed 42

  # Play in a world file and pick up servers added to it while playing
  hackshell play --world world.yaml --watch

  # Debug logging through the environment
  HACKSHELL_LOGGING_LEVEL=DEBUG hackshell play`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playWorld, "world", "", "World file to load (generated and saved there when missing)")
	playCmd.Flags().IntVar(&playServers, "servers", 0, "Number of remote servers to generate")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Generator seed (0 picks a random seed)")
	playCmd.Flags().BoolVar(&playStrict, "strict", false, "Reject touch/mkdir on existing names and rmdir on non-empty directories")
	playCmd.Flags().BoolVar(&playWatch, "watch", false, "Register servers appended to the world file while playing")
}

// applyPlayFlags copies the flags the user set over the loaded configuration.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("world") {
		cfg.World.File = playWorld
	}
	if flags.Changed("servers") {
		cfg.World.Servers = playServers
	}
	if flags.Changed("seed") {
		cfg.World.Seed = playSeed
	}
	if flags.Changed("strict") {
		cfg.Shell.Strict = playStrict
	}
	if flags.Changed("watch") {
		cfg.World.Watch = playWatch
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return err
	}
	applyPlayFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := InitLogger(cfg); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	telemetryShutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    "hackshell",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := telemetryShutdown(shutdownCtx); err != nil {
			logger.Error("Telemetry shutdown error", logger.KeyError, err)
		}
	}()

	profilingShutdown, err := telemetry.InitProfiling(telemetry.ProfilingConfig{
		Enabled:        cfg.Telemetry.Profiling.Enabled,
		ServiceName:    "hackshell",
		ServiceVersion: Version,
		Endpoint:       cfg.Telemetry.Profiling.Endpoint,
		ProfileTypes:   cfg.Telemetry.Profiling.ProfileTypes,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize profiling: %w", err)
	}
	defer func() {
		if err := profilingShutdown(); err != nil {
			logger.Error("Profiling shutdown error", logger.KeyError, err)
		}
	}()

	logger.Info("Configuration loaded", "source", getConfigSource(GetConfigFile()))

	w, err := config.InitializeWorld(ctx, cfg.World)
	if err != nil {
		return err
	}

	var shellMetrics metrics.ShellMetrics
	if cfg.Metrics.Enabled {
		registry := metrics.InitRegistry()
		shellMetrics = promMetrics.NewShellMetrics()

		apiServer := api.NewServer(api.APIConfig{
			Port:            cfg.Metrics.Port,
			ShutdownTimeout: cfg.ShutdownTimeout,
		}, w.Registry, registry)
		go func() {
			if err := apiServer.Start(ctx); err != nil {
				logger.Error("API server error", logger.KeyError, err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			_ = apiServer.Stop(shutdownCtx)
		}()
	} else {
		logger.Info("Metrics collection disabled")
	}

	if cfg.World.Watch {
		watcher := world.NewWatcher(cfg.World.File, w.Registry)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Warn("World watcher stopped", logger.KeyPath, cfg.World.File, logger.KeyError, err)
			}
		}()
	}

	sess, err := session.New(w.Home, w.Registry, session.Options{Strict: cfg.Shell.Strict})
	if err != nil {
		return err
	}
	dispatcher := shell.NewDispatcher(sess, shell.Options{Metrics: shellMetrics})

	printer := output.NewPrinter(cmd.OutOrStdout(), output.FormatTable, readline.IsTerminal(int(os.Stdout.Fd())))
	printer.Success(fmt.Sprintf("Connected to %s (%s). Type 'help' to list the commands.", w.Home.Name, w.Home.IP))

	r := newREPL(dispatcher, printer, cfg.Shell.Prompt)
	err = r.Run(ctx, cfg.Shell.HistoryFile)

	logger.Info("Session ended",
		logger.KeySessionID, sess.ID,
		"known_servers", len(sess.Known))
	return err
}
