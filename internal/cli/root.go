package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/hullworks/stevedore/internal"
	"github.com/hullworks/stevedore/internal/engine"
	"github.com/hullworks/stevedore/internal/settings"
)

// Represents the root command for the stevedore CLI.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Host    string     `short:"H" help:"Override the engine endpoint." placeholder:"URL"`
	Run     RunCmd     `cmd:"" help:"Run a command in a fresh container."`
	Remove  RemoveCmd  `cmd:"" name:"rm" help:"Remove a container."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Carries a container's non-zero exit code out to the process exit.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("container exited with status %d", e.Code)
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Runs one-shot workloads in containers managed by a remote engine."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
//
// Flags override the build-time defaults set via linker flags.
func configureLogger() {
	if RootCmd.Quiet {
		internal.SetQuiet(true)
	}
	if RootCmd.Debug {
		internal.SetDebug(true)
	}

	level := slog.LevelInfo
	if internal.IsDebug() {
		level = slog.LevelDebug
	} else if internal.IsQuiet() {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Connects to the container engine.
//
// The endpoint comes from the --host flag when given, then the settings
// file, then the Docker environment.
func connect() (*engine.Docker, error) {
	s, err := settings.Load()
	if err != nil {
		return nil, err
	}

	host := RootCmd.Host
	if host == "" {
		host = s.Host
	}

	return engine.NewDocker(host, s.APIVersion)
}
