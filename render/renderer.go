// Package render expands stylesheet templates written with text/template,
// slim-sprig functions and style helpers.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"text/template"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"stylekit/config"
	"stylekit/css"
	"stylekit/styles"
)

// Renderer is safe for concurrent use once created.
type Renderer struct {
	log    *zap.Logger
	cfg    config.RenderConfig
	sets   map[string]*styles.MediaHelpers
	funcs  template.FuncMap
	parser *css.Parser
	rpt    *config.Report
}

// New creates renderer. Nil cfg means no extra breakpoint sets, no variables
// and no verification.
func New(log *zap.Logger, cfg *config.RenderConfig) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		log: log.Named("render"),
		sets: map[string]*styles.MediaHelpers{
			"custom": styles.MediaCustom(),
			"hedron": styles.MediaHedron(),
		},
	}
	if cfg != nil {
		r.cfg = *cfg
	}
	if r.cfg.Extension == "" {
		r.cfg.Extension = ".css"
	}

	for _, set := range r.cfg.BreakpointSets {
		if _, exists := r.sets[set.Name]; exists {
			return nil, fmt.Errorf("breakpoint set %q is already defined", set.Name)
		}
		bps := make(styles.Breakpoints, 0, len(set.Breakpoints))
		for _, bp := range set.Breakpoints {
			if bp.Label == "" || bp.Width <= 0 {
				return nil, fmt.Errorf("breakpoint set %q: invalid breakpoint %q (%d)", set.Name, bp.Label, bp.Width)
			}
			bps = append(bps, styles.Breakpoint{Label: bp.Label, Width: bp.Width})
		}
		r.sets[set.Name] = styles.BuildBreakpointHelpers(bps, nil)
		r.log.Debug("Breakpoint set registered", zap.String("set", set.Name), zap.Strings("labels", bps.Labels()))
	}

	r.funcs = r.funcMap()
	r.parser = css.NewParser(r.log)
	return r, nil
}

// Sets returns names of available breakpoint sets in natural order.
func (r *Renderer) Sets() []string {
	names := slices.Collect(maps.Keys(r.sets))
	sort.Sort(natural.StringSlice(names))
	return names
}

// Set returns breakpoint helpers registered under name.
func (r *Renderer) Set(name string) (*styles.MediaHelpers, bool) {
	h, ok := r.sets[name]
	return h, ok
}

// Render expands template src. Configured variables are available as
// template data, missing keys are errors. When verification is on result is
// parsed back and anything parser does not understand is logged.
func (r *Renderer) Render(name string, src []byte) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(r.funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("unable to parse template %s: %w", name, err)
	}

	data := r.cfg.Variables
	if data == nil {
		data = map[string]any{}
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		if kind, ok := styles.KindOf(err); ok {
			r.log.Debug("Style helper rejected arguments", zap.String("template", name), zap.Stringer("kind", kind))
		}
		return nil, fmt.Errorf("unable to render template %s: %w", name, err)
	}

	if r.cfg.Verify {
		r.verify(name, buf.Bytes())
	}
	return buf.Bytes(), nil
}

// Verify parses rendered stylesheet and returns parser warnings as errors.
func (r *Renderer) Verify(name string, data []byte) error {
	sheet := r.parser.Parse(data, name)
	var errs []error
	for _, w := range sheet.Warnings {
		errs = append(errs, errors.New(w))
	}
	return errors.Join(errs...)
}

func (r *Renderer) verify(name string, data []byte) {
	sheet := r.parser.Parse(data, name)
	for _, w := range sheet.Warnings {
		r.log.Warn("Rendered stylesheet has problems", zap.String("template", name), zap.String("problem", w))
	}
	r.log.Debug("Rendered stylesheet verified", zap.String("template", name),
		zap.Int("rules", len(sheet.Rules())), zap.Int("media", len(sheet.MediaBlocks())))
}
