// internal/util/util_test.go
package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	data := []byte("test payload")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := WriteFile(path, []byte("a much longer first payload")); err != nil {
		t.Fatalf("first WriteFile error: %v", err)
	}
	if err := WriteFile(path, []byte("short")); err != nil {
		t.Fatalf("second WriteFile error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != "short" {
		t.Fatalf("expected truncating overwrite, got %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T, root string) string
		wantErr bool
	}{
		{
			name: "nested missing parents",
			setup: func(t *testing.T, root string) string {
				return filepath.Join(root, "a", "b", "c")
			},
		},
		{
			name: "existing directory",
			setup: func(t *testing.T, root string) string {
				return root
			},
		},
		{
			name: "path is a regular file",
			setup: func(t *testing.T, root string) string {
				path := filepath.Join(root, "file")
				if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
					t.Fatalf("write file: %v", err)
				}
				return path
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := tt.setup(t, t.TempDir())
			err := EnsureDir(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnsureDir(%q) error = %v, wantErr %v", path, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				t.Fatalf("expected directory at %q, stat err=%v", path, err)
			}
		})
	}
}
