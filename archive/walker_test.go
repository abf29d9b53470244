package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type bundleEntry struct {
	name    string
	content string
	dir     bool
}

func makeBundle(t *testing.T, entries []bundleEntry) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "theme.zip")

	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		if e.dir {
			hdr.SetMode(os.ModeDir | 0755)
		}
		fw, err := w.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", e.name, err)
		}
		if !e.dir {
			if _, err := fw.Write([]byte(e.content)); err != nil {
				t.Fatalf("Failed to write %s: %v", e.name, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return name
}

func TestWalk(t *testing.T) {
	bundle := makeBundle(t, []bundleEntry{
		{name: "theme/", dir: true},
		{name: "theme/base.css.tmpl", content: "p { }"},
		{name: "theme/grid.tmpl", content: "{{ mediaHedron \"sm\" }}"},
		{name: "theme/README.md", content: "docs"},
		{name: "logo.png", content: "\x89PNG"},
	})

	tests := []struct {
		name   string
		suffix string
		want   []string
	}{
		{"templates", ".tmpl", []string{"theme/base.css.tmpl", "theme/grid.tmpl"}},
		{"markdown", ".md", []string{"theme/README.md"}},
		{"no match", ".scss", nil},
		{"everything", "", []string{"theme/base.css.tmpl", "theme/grid.tmpl", "theme/README.md", "logo.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(bundle, tt.suffix, func(b string, file *zip.File) error {
				if b != bundle {
					t.Errorf("bundle = %s, want %s", b, bundle)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if len(visited) != len(tt.want) {
				t.Fatalf("visited %v, want %v", visited, tt.want)
			}
			for i := range visited {
				if visited[i] != tt.want[i] {
					t.Errorf("visited[%d] = %s, want %s", i, visited[i], tt.want[i])
				}
			}
		})
	}
}

func TestWalk_Stops(t *testing.T) {
	bundle := makeBundle(t, []bundleEntry{
		{name: "a.tmpl"}, {name: "b.tmpl"}, {name: "c.tmpl"},
	})

	stop := errors.New("stop walking")
	visited := 0
	err := Walk(bundle, ".tmpl", func(string, *zip.File) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2", visited)
	}
}

func TestWalk_UnsafeBundle(t *testing.T) {
	for _, name := range []string{"../escape.tmpl", "theme/../../escape.tmpl", "/abs.tmpl", `\abs.tmpl`, `theme\..\..\x.tmpl`} {
		t.Run(name, func(t *testing.T) {
			bundle := makeBundle(t, []bundleEntry{{name: "ok.tmpl"}, {name: name}})
			err := Walk(bundle, ".tmpl", func(string, *zip.File) error { return nil })
			if err == nil {
				t.Error("expected error for unsafe entry")
			}
		})
	}
}

func TestWalk_InvalidBundle(t *testing.T) {
	if err := Walk("/nonexistent/theme.zip", "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.zip")
	if err := os.WriteFile(invalid, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to create invalid zip: %v", err)
	}
	if err := Walk(invalid, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Error("Expected error for invalid zip file")
	}
}

func TestReadFile(t *testing.T) {
	bundle := makeBundle(t, []bundleEntry{{name: "base.css.tmpl", content: "p { margin: 0; }"}})

	var got []byte
	err := Walk(bundle, ".tmpl", func(_ string, file *zip.File) (err error) {
		got, err = ReadFile(file)
		return err
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if string(got) != "p { margin: 0; }" {
		t.Errorf("ReadFile() = %q", got)
	}
}
