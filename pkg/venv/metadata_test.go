package venv

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestReadMetadata(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		wantNil     bool
		wantVersion string
		wantMinor   string
		wantHome    string
		wantSystem  bool
	}{
		{
			name:        "venv pyvenv.cfg",
			files:       map[string]string{"/env/pyvenv.cfg": "home = /usr/bin\ninclude-system-site-packages = false\nversion = 3.11.4\n"},
			wantVersion: "3.11.4",
			wantMinor:   "3.11",
			wantHome:    "/usr/bin",
		},
		{
			name:        "virtualenv pyvenv.cfg",
			files:       map[string]string{"/env/pyvenv.cfg": "home = /opt/py\nimplementation = CPython\nversion_info = 3.12.1.final.0\ninclude-system-site-packages = true\nvirtualenv = 20.25.0\n"},
			wantVersion: "3.12.1.final.0",
			wantMinor:   "3.12",
			wantHome:    "/opt/py",
			wantSystem:  true,
		},
		{
			name: "conda package record",
			files: map[string]string{
				"/env/conda-meta/python-dateutil-2.8.2-pyhd3eb1b0_0.json": `{"name": "python-dateutil", "version": "2.8.2"}`,
				"/env/conda-meta/python-3.10.13-h955ad1f_0.json":          `{"name": "python", "version": "3.10.13", "build": "h955ad1f_0"}`,
			},
			wantVersion: "3.10.13",
			wantMinor:   "3.10",
		},
		{
			name:    "no metadata",
			files:   map[string]string{"/env/bin/python": ""},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeFiles(t, fsys, tt.files)

			meta := ReadMetadata(fsys, filepath.FromSlash("/env"))
			if tt.wantNil {
				if meta != nil {
					t.Errorf("ReadMetadata() = %+v, want nil", meta)
				}
				if meta.Minor() != "" {
					t.Errorf("Minor() on nil = %q, want empty", meta.Minor())
				}
				return
			}
			if meta == nil {
				t.Fatal("ReadMetadata() = nil, want metadata")
			}
			if meta.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", meta.Version, tt.wantVersion)
			}
			if got := meta.Minor(); got != tt.wantMinor {
				t.Errorf("Minor() = %q, want %q", got, tt.wantMinor)
			}
			if meta.Home != tt.wantHome {
				t.Errorf("Home = %q, want %q", meta.Home, tt.wantHome)
			}
			if meta.SystemSite != tt.wantSystem {
				t.Errorf("SystemSite = %v, want %v", meta.SystemSite, tt.wantSystem)
			}
			if meta.Source == "" {
				t.Error("Source is empty")
			}
		})
	}
}

func TestReadMetadata_GlobCharactersInRoot(t *testing.T) {
	tests := []struct {
		name string
		root string
	}{
		{"unclosed bracket", "/proj/build[x86/env"},
		{"character class", "/proj/a[1]/env"},
		{"star and question mark", "/proj/*?/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeFiles(t, fsys, map[string]string{
				tt.root + "/conda-meta/python-3.12.2-h1_0.json": `{"name": "python", "version": "3.12.2"}`,
			})

			meta := ReadMetadata(fsys, filepath.FromSlash(tt.root))
			if meta == nil {
				t.Fatal("ReadMetadata() = nil, want conda metadata")
			}
			if meta.Version != "3.12.2" {
				t.Errorf("Version = %q, want 3.12.2", meta.Version)
			}
		})
	}
}

func TestReadMetadata_UnreadableCondaDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// conda-meta is a file here, so listing it fails.
	writeFiles(t, fsys, map[string]string{"/env/conda-meta": "not a directory"})

	if meta := ReadMetadata(fsys, filepath.FromSlash("/env")); meta != nil {
		t.Errorf("ReadMetadata() = %+v, want nil", meta)
	}
}
