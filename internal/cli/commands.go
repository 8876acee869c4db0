package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/bft-labs/et/internal/batch"
	"github.com/bft-labs/et/internal/domain"
	"github.com/bft-labs/et/internal/follow"
	"github.com/bft-labs/et/pkg/calendar"
	"github.com/bft-labs/et/pkg/duration"
	"github.com/bft-labs/et/pkg/iso8601"
	"github.com/bft-labs/et/pkg/log"
)

// errOffsetSign is returned for `et 7d`, which is neither an epoch nor a
// signed offset.
var errOffsetSign = errors.New("offsets given without an epoch need an explicit sign, e.g. +7d or -7d")

// runRoot handles `et`, `et <offset>`, `et <epoch>` and `et <epoch> <offset>`.
func (a *app) runRoot(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return a.nowOrStdin(ctx, nil)

	case 1:
		if duration.IsOffset(args[0]) {
			off, err := duration.ParseOffset(args[0])
			if err != nil {
				return err
			}
			return a.nowOrStdin(ctx, off)
		}
		e, err := domain.ParseEpoch(args[0])
		if err != nil {
			if _, derr := duration.Parse(args[0]); derr == nil {
				return errOffsetSign
			}
			return err
		}
		return a.println(a.renderer()(e))
	}

	e, err := domain.ParseEpoch(args[0])
	if err != nil {
		return err
	}
	return a.printOffset(e, args[1])
}

// nowOrStdin converts piped stdin lines when there are any, and otherwise
// prints the current epoch. off may be nil.
func (a *app) nowOrStdin(ctx context.Context, off duration.Offset) error {
	if !a.deps.StdinIsTerminal() {
		p := a.newProcessor(off)
		if err := p.Run(ctx, a.deps.Stdin); err != nil {
			return err
		}
		if p.Stats().Lines > 0 {
			return nil
		}
		a.logger.Debug("no input on stdin, using the current time")
	}

	e, err := calendar.ApplyOffset(a.deps.Clock.Now(), off)
	if err != nil {
		return err
	}
	return a.println(a.renderer()(e))
}

func (a *app) printOffset(e domain.Epoch, token string) error {
	off, err := duration.ParseOffset(token)
	if err != nil {
		return err
	}
	r, err := calendar.ApplyOffset(e, off)
	if err != nil {
		return err
	}
	return a.println(a.renderer()(r))
}

func (a *app) newProcessor(off duration.Offset) *batch.Processor {
	return batch.NewProcessor(a.deps.Stdout,
		batch.WithOffset(off),
		batch.WithPolicy(a.cfg.Policy()),
		batch.WithRenderer(a.renderer()),
		batch.WithLogger(a.logger))
}

func (a *app) newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now [offset]",
		Short: "Print the current epoch, optionally offset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			now := a.deps.Clock.Now()
			if len(args) == 0 {
				return a.println(a.renderer()(now))
			}
			return a.printOffset(now, args[0])
		},
	}
}

func (a *app) newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <iso8601>",
		Short: "Convert an ISO-8601 UTC timestamp (YYYY-MM-DDTHH:MM:SSZ) to an epoch",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			parse := iso8601.Parse
			if a.cfg.Lenient {
				parse = iso8601.ParseLenient
			}
			e, err := parse(args[0])
			if err != nil {
				return err
			}
			return a.println(e.String())
		},
	}
	cmd.Flags().BoolVar(&a.cfg.Lenient, "lenient", a.cfg.Lenient, "also accept zone offsets, date-only input and other common timestamp shapes")
	return cmd
}

func (a *app) newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <epoch>",
		Short: "Convert an epoch to an ISO-8601 UTC timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, err := domain.ParseEpoch(args[0])
			if err != nil {
				return err
			}
			return a.println(iso8601.Format(e))
		},
	}
}

func (a *app) newFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <file> [offset]",
		Short: "Convert epochs in a file, then keep converting lines appended to it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var off duration.Offset
			if len(args) == 2 {
				var err error
				if off, err = duration.ParseOffset(args[1]); err != nil {
					return err
				}
			}

			p := a.newProcessor(off)
			a.logger.Info("following", log.String("path", args[0]), log.Stringer("offset", off))
			if err := follow.New(args[0], a.logger).Run(cmd.Context(), p.Line); err != nil {
				return err
			}
			return p.Finish()
		},
	}
}
