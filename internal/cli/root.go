package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/et/internal/adapters/clock"
	"github.com/bft-labs/et/internal/adapters/terminal"
	"github.com/bft-labs/et/internal/batch"
	"github.com/bft-labs/et/internal/cliconfig"
	"github.com/bft-labs/et/internal/ports"
	"github.com/bft-labs/et/pkg/iso8601"
	"github.com/bft-labs/et/pkg/log"
)

const longHelp = `A CLI tool to print and manipulate Unix epoch timestamps, in UTC.

DURATION UNITS
  s    seconds
  m    minutes (60s)
  h    hours (3600s)
  d    days (86400s)
  w    weeks (604800s)
  M    months (calendar)
  Y    years (calendar)

Calendar units handle variable-length months and leap years. When adding
months, the day is clamped to the last day of the resulting month
(e.g. Jan 31 + 1M = Feb 28, or Feb 29 in a leap year).

ISO-8601 durations are accepted as offsets too (e.g. +P1M2D, -PT90M).

When stdin is not a terminal, each line is read as an epoch and the offset,
if any, is applied to every line.`

var exampleUsage = strings.TrimSpace(`
  et                      Print current epoch
  et -7d                  Subtract 7 days from now
  et +3h                  Add 3 hours to now
  et +1M                  Add 1 month to now
  et 1704912345 +1h       Add 1 hour to a given epoch
  et parse 2026-01-05T12:00:00Z
  et format 1704912345
  echo 1704912345 | et -1d
  et follow events.log +1d
`)

// Deps are the collaborators of the command tree. Zero fields fall back to
// the process environment.
type Deps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinIsTerminal reports whether Stdin is interactive. When it returns
	// false, bare and offset-only invocations read epochs from Stdin.
	StdinIsTerminal func() bool

	Clock ports.Clock

	// Logger overrides the configured stderr logger.
	Logger ports.Logger

	Version string
}

func (d Deps) withDefaults() Deps {
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.StdinIsTerminal == nil {
		d.StdinIsTerminal = func() bool { return terminal.IsInteractive(os.Stdin) }
	}
	if d.Clock == nil {
		d.Clock = clock.System{}
	}
	if d.Version == "" {
		d.Version = "dev"
	}
	return d
}

// app holds the resolved state shared by all commands of one invocation.
type app struct {
	deps    Deps
	cfg     cliconfig.Config
	cfgPath string
	logger  ports.Logger
}

// Execute runs the command tree with args (without the program name).
func Execute(ctx context.Context, deps Deps, args []string) error {
	root := NewRootCmd(deps)
	root.SetArgs(normalizeArgs(root, args))
	return root.ExecuteContext(ctx)
}

// NewRootCmd builds the et command tree.
func NewRootCmd(deps Deps) *cobra.Command {
	a := &app{deps: deps.withDefaults(), cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "et [epoch|offset] [offset]",
		Short:         "Print and manipulate Unix epoch timestamps",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       a.deps.Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd.Context(), args)
		},
	}
	root.SetIn(a.deps.Stdin)
	root.SetOut(a.deps.Stdout)
	root.SetErr(a.deps.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.et/config.toml)")
	pf.StringVar(&a.cfg.OnError, "on-error", a.cfg.OnError, "what to do with a malformed stdin line: abort, skip or report")
	pf.StringVar(&a.cfg.Output, "output", a.cfg.Output, "print results as epoch or iso")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level on stderr: debug, info, warn or error")

	root.AddCommand(
		a.newNowCmd(),
		a.newParseCmd(),
		a.newFormatCmd(),
		a.newFollowCmd(),
	)
	return root
}

// configure resolves configuration with precedence flags > env > file.
func (a *app) configure(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.Load(&a.cfg, a.cfgPath, changed); err != nil {
		return err
	}

	a.logger = a.deps.Logger
	if a.logger == nil {
		a.logger = log.NewZerologAdapter(a.deps.Stderr, a.cfg.Level())
	}
	a.logger.Debug("configuration",
		log.String("on_error", a.cfg.OnError),
		log.String("output", a.cfg.Output),
		log.String("log_level", a.cfg.LogLevel),
		log.Bool("lenient", a.cfg.Lenient))
	return nil
}

// renderer returns the configured output renderer.
func (a *app) renderer() batch.Renderer {
	if a.cfg.Output == cliconfig.OutputISO {
		return iso8601.Format
	}
	return batch.EpochRenderer
}

func (a *app) println(s string) error {
	if _, err := fmt.Fprintln(a.deps.Stdout, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
