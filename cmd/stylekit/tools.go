package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylekit/config"
	"stylekit/css"
	"stylekit/render"
	"stylekit/state"
	"stylekit/styles"
)

var stdout io.Writer = os.Stdout

func checkStylesheets(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	log := env.Logger("check")

	if cmd.Args().Len() == 0 {
		return errors.New("no stylesheet has been specified")
	}

	parser := css.NewParser(env.Log)
	for _, fname := range cmd.Args().Slice() {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		data, er := os.ReadFile(fname)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to read stylesheet: %w", er))
			continue
		}
		env.Rpt.Store("check/"+config.CleanFileName(fname), fname)

		var sheet *css.Stylesheet
		if cmd.Bool("fragment") {
			sheet = parser.ParseFragment(data)
		} else {
			sheet = parser.Parse(data, fname)
		}
		log.Info("Stylesheet parsed", zap.String("file", fname),
			zap.Int("rules", len(sheet.Rules())), zap.Int("media", len(sheet.MediaBlocks())), zap.Int("problems", len(sheet.Warnings)))
		for _, mb := range sheet.MediaBlocks() {
			w, _ := mb.Query.MinWidth()
			log.Debug("Media block", zap.String("file", fname), zap.String("query", mb.Query.Raw), zap.Float64("min-width", w), zap.Int("rules", len(mb.Rules)))
		}
		if cmd.Bool("tree") {
			fmt.Fprintf(stdout, "%s\n%s", fname, sheet.Dump())
		}
		if cmd.Bool("print") {
			fmt.Fprintf(stdout, "/* %s */\n", fname)
			if _, er := sheet.WriteTo(stdout); er != nil {
				return multierr.Append(err, fmt.Errorf("unable to print stylesheet: %w", er))
			}
		}
		for _, w := range sheet.Warnings {
			log.Warn("Stylesheet problem", zap.String("file", fname), zap.String("problem", w))
		}
		if len(sheet.Warnings) > 0 {
			err = multierr.Append(err, fmt.Errorf("%s: %d problem(s) found", fname, len(sheet.Warnings)))
		}
	}
	return err
}

func convertToRem(ctx context.Context, cmd *cli.Command) (err error) {
	if cmd.Args().Len() == 0 {
		return errors.New("no value has been specified")
	}
	for _, v := range cmd.Args().Slice() {
		rem, er := styles.PixelsToRootRelative(v)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", v, rem)
	}
	return err
}

func convertToRGBA(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errors.New("expecting exactly two arguments: HEX OPACITY")
	}
	hex, arg := cmd.Args().Get(0), cmd.Args().Get(1)

	opacity, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return styles.NewError(styles.ErrorKindInvalidOpacity, "opacity must be a number, got %q", arg)
	}
	rgba, err := styles.HexToRGBA(hex, opacity)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, rgba)
	return nil
}

func listBreakpoints(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	r, err := render.New(env.Log, &env.Cfg.Render)
	if err != nil {
		return fmt.Errorf("unable to prepare breakpoint sets: %w", err)
	}

	names := r.Sets()
	if name := cmd.String("set"); len(name) > 0 {
		if _, ok := r.Set(name); !ok {
			return styles.NewError(styles.ErrorKindUnknownBreakpoint, "no breakpoint set %q", name)
		}
		names = []string{name}
	}

	for _, name := range names {
		h, _ := r.Set(name)
		fmt.Fprintln(stdout, name)
		for _, bp := range h.Breakpoints() {
			fmt.Fprintf(stdout, "    %-10s %5dpx  %s\n", bp.Label, bp.Width, styles.MinWidthQuery(bp.Width))
		}
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := stdout
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
