package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		wantErr bool
	}{
		{
			name:  "creates missing directory",
			setup: func(t *testing.T, dir string) {},
		},
		{
			name: "existing directory is reused",
			setup: func(t *testing.T, dir string) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					t.Fatalf("Failed to create dir: %v", err)
				}
				if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644); err != nil {
					t.Fatalf("Failed to write file: %v", err)
				}
			},
		},
		{
			name: "path is a file",
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(dir, []byte("x"), 0644); err != nil {
					t.Fatalf("Failed to write file: %v", err)
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "dist")
			tt.setup(t, dir)

			store, err := New(dir)
			if tt.wantErr {
				if err == nil {
					t.Error("New() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			info, err := os.Stat(store.Dir())
			if err != nil || !info.IsDir() {
				t.Errorf("output directory %s not created", store.Dir())
			}
		})
	}
}

func TestNew_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	for i := 0; i < 2; i++ {
		if _, err := New(dir); err != nil {
			t.Fatalf("New() call %d error: %v", i+1, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := store.WriteFile("index.html", []byte("first")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := store.WriteFile("index.html", []byte("second")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(store.Path("index.html"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestWriteFiles(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	err = store.WriteFiles(
		File{Name: "index.html", Data: []byte("<html></html>")},
		File{Name: "races.json", Data: []byte("[]")},
	)
	if err != nil {
		t.Fatalf("WriteFiles() error: %v", err)
	}

	for name, want := range map[string]string{"index.html": "<html></html>", "races.json": "[]"} {
		data, err := os.ReadFile(store.Path(name))
		if err != nil {
			t.Fatalf("ReadFile(%s) error: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}
}

func TestWriteFiles_PartialFailure(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// A name inside a missing subdirectory cannot be staged
	err = store.WriteFiles(
		File{Name: "index.html", Data: []byte("<html></html>")},
		File{Name: filepath.Join("missing", "races.json"), Data: []byte("[]")},
		File{Name: "races.ics", Data: []byte("BEGIN:VCALENDAR")},
	)
	if err == nil {
		t.Fatal("WriteFiles() expected error, got nil")
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("failed WriteFiles() left %v, want an empty directory", names)
	}
}
