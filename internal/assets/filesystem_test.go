package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeAsset creates base/dir/name with content.
func writeAsset(t *testing.T, base, dir, name, content string) {
	t.Helper()
	full := filepath.Join(base, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", full, err)
	}
	if err := os.WriteFile(filepath.Join(full, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid directory", path: tmpDir},
		{name: "empty path", path: "", wantErr: ErrInvalidBasePath},
		{name: "missing directory", path: filepath.Join(tmpDir, "missing"), wantErr: ErrInvalidBasePath},
		{name: "file instead of directory", path: filePath, wantErr: ErrInvalidBasePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewFilesystemLoader(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewFilesystemLoader(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil || loader == nil {
				t.Fatalf("NewFilesystemLoader(%q) = %v, %v", tt.path, loader, err)
			}
		})
	}
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "corporate.css", "body { color: navy; }")
	writeAsset(t, base, "templates", "page.html", "<p>{{.Body}}</p>")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	t.Run("style", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadStyle("corporate")
		if err != nil || got != "body { color: navy; }" {
			t.Errorf("LoadStyle() = %q, %v", got, err)
		}
	})

	t.Run("template", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate("page")
		if err != nil || got != "<p>{{.Body}}</p>" {
			t.Errorf("LoadTemplate() = %q, %v", got, err)
		}
	})

	t.Run("missing assets", func(t *testing.T) {
		t.Parallel()

		if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
		}
		if _, err := loader.LoadTemplate("images"); !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate(images) error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secret", `..\secret`, "page.evil"} {
			if _, err := loader.LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadTemplate(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	secret := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(secret, []byte("secret content"), 0o644); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlink creation not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) error = %v, want ErrPathTraversal", err)
	}
}
