// Package output prints the status banner and check results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"
	"gopkg.in/yaml.v3"

	"github.com/vertti/venvrun/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

// Report formats accepted by PrintReport.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// Banner is the status shown before the command runs.
type Banner struct {
	Env string // active prefix
	Cwd string
	Cmd string
}

// PrintBanner writes the fixed four-line banner.
func PrintBanner(w io.Writer, b Banner) {
	_, _ = fmt.Fprintf(w, "Executing...\nEnv: %s\nCwd: %s\nCmd: %s\n", b.Env, b.Cwd, b.Cmd)
}

// PrintResult outputs a check result with colored status.
func PrintResult(w io.Writer, r check.Result) {
	indent := "     "
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, formatLabel(r.Name))
	} else {
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, formatLabel(r.Name))
		indent = "       "
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// PrintReport writes results as text, JSON or YAML.
func PrintReport(w io.Writer, format string, results []check.Result) error {
	switch format {
	case "", FormatText:
		for _, r := range results {
			PrintResult(w, r)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

// formatLabel dims the "label:" part of a "label: value" line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ":")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + rest
}
