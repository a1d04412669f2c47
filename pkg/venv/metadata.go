package venv

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/vertti/venvrun/pkg/version"
)

const pyvenvConfig = "pyvenv.cfg"

// Metadata describes the interpreter an environment was created from.
type Metadata struct {
	Version    string // interpreter version, e.g. "3.11.4"
	Home       string // base interpreter directory (pyvenv.cfg only)
	SystemSite bool   // include-system-site-packages
	Source     string // file the metadata was read from
}

// Minor returns the "major.minor" part of the version, or "" when unknown.
func (m *Metadata) Minor() string {
	if m == nil || m.Version == "" {
		return ""
	}
	v, err := version.Extract(m.Version)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// ReadMetadata reads pyvenv.cfg, falling back to conda's package records.
// It returns nil when the environment carries neither or they cannot be read.
func ReadMetadata(fsys afero.Fs, root string) *Metadata {
	cfgPath := filepath.Join(root, pyvenvConfig)
	data, err := afero.ReadFile(fsys, cfgPath)
	if err == nil {
		return parsePyvenvConfig(data, cfgPath)
	}
	return readCondaMetadata(fsys, root)
}

func parsePyvenvConfig(data []byte, source string) *Metadata {
	m := &Metadata{Source: source}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "version", "version_info":
			// virtualenv writes version_info, venv writes version.
			if m.Version == "" {
				m.Version = value
			}
		case "home":
			m.Home = value
		case "include-system-site-packages":
			m.SystemSite = strings.EqualFold(value, "true")
		}
	}
	return m
}

func readCondaMetadata(fsys afero.Fs, root string) *Metadata {
	for _, path := range matchDir(fsys, filepath.Join(root, "conda-meta"), "python-*.json") {
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			continue
		}
		// python-dateutil and friends share the prefix.
		if gjson.GetBytes(data, "name").String() != "python" {
			continue
		}
		return &Metadata{
			Version: gjson.GetBytes(data, "version").String(),
			Source:  path,
		}
	}
	return nil
}
