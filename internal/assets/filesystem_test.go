package assets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeAsset(t *testing.T, base, logical, content string) {
	t.Helper()

	path := filepath.Join(base, filepath.FromSlash(logical))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ---------------------------------------------------------------------------
// NewFilesystemLoader
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if !filepath.IsAbs(loader.BasePath()) {
			t.Errorf("BasePath() = %q, want absolute", loader.BasePath())
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, "file.txt", "test")

		_, err := NewFilesystemLoader(filepath.Join(dir, "file.txt"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// LoadTemplate / LoadSchema
// ---------------------------------------------------------------------------

func TestFilesystemLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("loads existing template", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, "templates/custom.html", "<p>{{.profile.name}}</p>")

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		got, err := loader.LoadTemplate("custom.html")
		if err != nil {
			t.Fatalf("LoadTemplate() error = %v", err)
		}
		if got != "<p>{{.profile.name}}</p>" {
			t.Errorf("LoadTemplate() = %q", got)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate("missing.html")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate("../escape.html")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("symlink escaping base is rejected", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("symlinks require privileges on windows")
		}

		outside := t.TempDir()
		writeAsset(t, outside, "secret.html", "secret")

		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "templates"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.Symlink(filepath.Join(outside, "secret.html"), filepath.Join(dir, "templates", "link.html")); err != nil {
			t.Fatalf("symlink: %v", err)
		}

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadTemplate("link.html")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadTemplate() error = %v, want ErrPathTraversal", err)
		}
	})
}

func TestFilesystemLoader_LoadSchema(t *testing.T) {
	t.Parallel()

	t.Run("missing schema", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadSchema()
		if !errors.Is(err, ErrSchemaNotFound) {
			t.Errorf("LoadSchema() error = %v, want ErrSchemaNotFound", err)
		}
	})

	t.Run("existing schema", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, "schema/resume.schema.json", `{"type":"array"}`)

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		got, err := loader.LoadSchema()
		if err != nil {
			t.Fatalf("LoadSchema() error = %v", err)
		}
		if got != `{"type":"array"}` {
			t.Errorf("LoadSchema() = %q", got)
		}
	})
}
