package hashrelay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filehash-labs/hashrelay/types"
)

func TestResolveFileInfo(t *testing.T) {
	tests := []struct {
		name     string
		ref      types.FileRef
		wantName string
		wantType string
	}{
		{"pdf path", types.FilePath("./report.pdf"), "report.pdf", "application/pdf"},
		{"nested path", types.FilePath("/var/data/assets/logo.png"), "logo.png", "image/png"},
		{"unknown extension", types.FilePath("./dump.xyz"), "dump.xyz", "application/octet-stream"},
		{"no extension", types.FilePath("./Makefile"), "Makefile", "application/octet-stream"},
		{"raw buffer", types.FileBytes([]byte("content")), "file", "application/octet-stream"},
		{"reader", types.FileReader(strings.NewReader("content")), "file", "application/octet-stream"},
		{"declared name drives type", types.FileBytes([]byte("x")).WithName("notes.txt"), "notes.txt", "text/plain"},
		{"declared type wins", types.FilePath("./report.pdf").WithContentType("application/x-custom"), "report.pdf", "application/x-custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, contentType := resolveFileInfo(tt.ref)
			if name != tt.wantName {
				t.Errorf("expected filename %q, got %q", tt.wantName, name)
			}
			if contentType != tt.wantType {
				t.Errorf("expected content type %q, got %q", tt.wantType, contentType)
			}
		})
	}
}

func TestMaterialize(t *testing.T) {
	content := []byte("hello hashing service")

	t.Run("buffer returned as-is", func(t *testing.T) {
		data, err := materialize(types.FileBytes(content))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("expected %q, got %q", content, data)
		}
	})

	t.Run("path read from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.txt")
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatal(err)
		}
		data, err := materialize(types.FilePath(path))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("expected %q, got %q", content, data)
		}
	})

	t.Run("reader drained in full", func(t *testing.T) {
		data, err := materialize(types.FileReader(bytes.NewReader(content)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("expected %q, got %q", content, data)
		}
	})

	t.Run("missing path fails", func(t *testing.T) {
		if _, err := materialize(types.FilePath(filepath.Join(t.TempDir(), "missing.bin"))); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("empty reference fails", func(t *testing.T) {
		if _, err := materialize(types.FileRef{}); err == nil {
			t.Error("expected error for empty reference")
		}
	})
}
