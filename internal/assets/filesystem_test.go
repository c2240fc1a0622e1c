package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeOverrideDir lays out an override directory with the given files,
// keyed by path relative to the base ("styles/report.css").
func writeOverrideDir(t *testing.T, files map[string]string) string {
	t.Helper()

	base := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(base, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(rel), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return base
}

func TestNewFilesystemLoader_RejectsUnusableDirs(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name string
		dir  string
	}{
		{name: "empty path", dir: ""},
		{name: "missing directory", dir: filepath.Join(t.TempDir(), "absent")},
		{name: "regular file", dir: file},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewFilesystemLoader(tt.dir); !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewFilesystemLoader(%q) error = %v, want %v", tt.dir, err, ErrInvalidBasePath)
			}
		})
	}
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := writeOverrideDir(t, map[string]string{
		"styles/report.css":     ".report-header { background: navy; }",
		"templates/report.html": "<main>{{.SiteName}}</main>",
	})
	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("style round trip", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadStyle("report")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != ".report-header { background: navy; }" {
			t.Errorf("LoadStyle() = %q", got)
		}
	})

	t.Run("template round trip", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate("report")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "<main>{{.SiteName}}</main>" {
			t.Errorf("LoadTemplate() = %q", got)
		}
	})

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("legacy"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(legacy) error = %v, want %v", err, ErrStyleNotFound)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadTemplate("invoice"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(invoice) error = %v, want %v", err, ErrTemplateNotFound)
		}
	})

	t.Run("invalid names rejected before disk access", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secret", `..\secret`, "report.css"} {
			if _, err := loader.LoadStyle(name); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadStyle(%q) error = %v, want %v", name, err, ErrInvalidAssetName)
			}
			if _, err := loader.LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadTemplate(%q) error = %v, want %v", name, err, ErrInvalidAssetName)
			}
		}
	})
}

func TestFilesystemLoader_SymlinkEscapeRejected(t *testing.T) {
	t.Parallel()

	base := writeOverrideDir(t, map[string]string{})
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o750); err != nil {
		t.Fatalf("creating styles dir: %v", err)
	}

	outside := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(outside, []byte("secret"), 0o600); err != nil {
		t.Fatalf("writing outside file: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	// The name passes validation; the resolved target does not.
	if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) error = %v, want %v", err, ErrPathTraversal)
	}
}

func TestFilesystemLoader_SymlinkedBaseAllowed(t *testing.T) {
	t.Parallel()

	real := writeOverrideDir(t, map[string]string{
		"styles/report.css": "body { margin: 0; }",
	})
	link := filepath.Join(t.TempDir(), "assets-link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	// The base itself may be a symlink (common for versioned deploys);
	// containment compares resolved paths so reads still succeed.
	loader, err := NewFilesystemLoader(link)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}
	if _, err := loader.LoadStyle("report"); err != nil {
		t.Errorf("LoadStyle() through symlinked base error = %v", err)
	}
}
