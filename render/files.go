package render

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stylekit/archive"
	"stylekit/config"
)

// TemplateExt marks stylesheet templates when directories are searched.
const TemplateExt = ".tmpl"

// WithReport makes renderer put every source and result into debug report.
func (r *Renderer) WithReport(rpt *config.Report) *Renderer {
	r.rpt = rpt
	return r
}

// source is a single template: either a file on disk or a bundle entry.
type source struct {
	name string
	load func() ([]byte, error)
}

func fileSource(path string) source {
	return source{name: path, load: func() ([]byte, error) { return os.ReadFile(path) }}
}

// RenderFiles renders every source into directory dst. Directories among
// sources are searched recursively and zip bundles are looked into for files
// with TemplateExt. Failure of one template does not stop processing of
// others, all failures are returned together. Cancellation is checked before
// each template.
func (r *Renderer) RenderFiles(ctx context.Context, sources []string, dst string, overwrite bool) (err error) {
	templates, err := r.collect(ctx, sources)
	if len(templates) == 0 {
		return multierr.Append(err, errors.New("nothing to render"))
	}
	if er := os.MkdirAll(dst, 0755); er != nil {
		return multierr.Append(err, fmt.Errorf("unable to create destination directory: %w", er))
	}

	// outputs written during this run, overwrite never applies to them
	claimed := make(map[string]string, len(templates))

	start, count := time.Now(), 0
	for i, src := range templates {
		if er := ctx.Err(); er != nil {
			return multierr.Append(err, er)
		}
		out := filepath.Join(dst, r.OutputName(src.name))
		if prev, ok := claimed[out]; ok {
			r.log.Error("Output name collision", zap.String("template", src.name), zap.String("previous", prev), zap.String("destination", out))
			err = multierr.Append(err, fmt.Errorf("%s: output %s was already rendered from %s", src.name, out, prev))
			continue
		}
		data, er := r.renderSource(src, out, overwrite)
		if er != nil {
			r.log.Error("Unable to render template", zap.String("template", src.name), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", src.name, er))
			continue
		}
		claimed[out] = src.name
		count++
		r.rpt.StoreData(fmt.Sprintf("source/%03d-%s", i, path.Base(filepath.ToSlash(src.name))), data)
		r.rpt.Store(fmt.Sprintf("rendered/%03d-%s", i, filepath.Base(out)), out)
		r.log.Debug("Rendered", zap.String("template", src.name), zap.String("destination", out))
	}
	r.log.Info("Rendering completed", zap.Int("rendered", count), zap.Int("failed", len(templates)-count), zap.Duration("elapsed", time.Since(start)))
	return err
}

// collect expands directories and bundles, reporting sources which could not
// be used.
func (r *Renderer) collect(ctx context.Context, sources []string) (templates []source, err error) {
	for _, src := range sources {
		fi, er := os.Stat(src)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("input source was not found: %w", er))
			continue
		}

		switch {
		case fi.Mode().IsRegular():
			bundle, er := isBundle(src)
			if er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to check source type: %w", er))
				continue
			}
			if !bundle {
				templates = append(templates, fileSource(src))
				continue
			}
			found, er := r.collectBundle(src)
			if er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to process bundle: %w", er))
			}
			templates = append(templates, found...)

		case fi.IsDir():
			found, er := r.collectDir(ctx, src)
			if er != nil {
				err = multierr.Append(err, er)
			}
			templates = append(templates, found...)

		default:
			err = multierr.Append(err, fmt.Errorf("unexpected path mode for (%s)", src))
		}
	}
	return templates, err
}

func (r *Renderer) collectDir(ctx context.Context, dir string) ([]source, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			r.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), TemplateExt) {
			found = append(found, path)
		}
		return nil
	})
	if len(found) == 0 {
		r.log.Debug("Nothing to render", zap.String("dir", dir))
	}
	sort.Sort(natural.StringSlice(found))

	templates := make([]source, 0, len(found))
	for _, f := range found {
		templates = append(templates, fileSource(f))
	}
	return templates, err
}

func (r *Renderer) collectBundle(bundle string) (templates []source, err error) {
	var entries []string
	contents := make(map[string][]byte)
	err = archive.Walk(bundle, TemplateExt, func(_ string, file *zip.File) error {
		data, err := archive.ReadFile(file)
		if err != nil {
			return fmt.Errorf("zip entry %q: %w", file.Name, err)
		}
		entries = append(entries, file.Name)
		contents[file.Name] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		r.log.Debug("Nothing to render", zap.String("bundle", bundle))
	}
	sort.Sort(natural.StringSlice(entries))

	for _, name := range entries {
		data := contents[name]
		templates = append(templates, source{
			name: filepath.Join(bundle, filepath.FromSlash(name)),
			load: func() ([]byte, error) { return data, nil },
		})
	}
	return templates, nil
}

// isBundle sniffs file header for zip signature.
func isBundle(name string) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

func (r *Renderer) renderSource(src source, out string, overwrite bool) ([]byte, error) {
	data, err := src.load()
	if err != nil {
		return nil, err
	}
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return nil, fmt.Errorf("not a stylesheet template, looks like %s (%s)", kind.MIME.Value, kind.Extension)
	}

	if _, err := os.Stat(out); err == nil && !overwrite {
		return nil, fmt.Errorf("output file already exists: %s", out)
	}

	result, err := r.Render(filepath.Base(src.name), data)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(out, result, 0644); err != nil {
		return nil, fmt.Errorf("unable to write rendered stylesheet: %w", err)
	}
	return data, nil
}

// OutputName derives result file name from source: template extension and
// original extension are dropped and configured one is added, so both
// "theme.css.tmpl" and "theme.tmpl" become "theme.css".
func (r *Renderer) OutputName(src string) string {
	name := strings.TrimSuffix(filepath.Base(src), TemplateExt)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if r.cfg.Transliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name) + r.cfg.Extension
}
