package render

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"stylekit/state"
)

// Run is "render" subcommand: SOURCE... DESTINATION.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Logger("render")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("no input source has been specified")
	}
	if len(args) == 1 {
		return errors.New("no destination has been specified")
	}
	sources, dst := args[:len(args)-1], args[len(args)-1]

	dst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	env.Overwrite = cmd.Bool("overwrite")

	r, err := New(env.Log, &env.Cfg.Render)
	if err != nil {
		return fmt.Errorf("unable to prepare renderer: %w", err)
	}
	r.WithReport(env.Rpt)

	log.Info("Processing starting", zap.Strings("sources", sources), zap.String("destination", dst), zap.Bool("overwrite", env.Overwrite))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return r.RenderFiles(ctx, sources, dst, env.Overwrite)
}
