// Package version parses interpreter versions and checks them against
// constraints such as ">=3.9, <3.13".
package version

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches version patterns like 3.11.4, v3.12, 3, etc.
var versionRegex = regexp.MustCompile(`v?(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Extract finds and parses the first version number in a string, such as the
// output of "python --version" or a "3.13.0rc1" record.
func Extract(s string) (*semver.Version, error) {
	m := versionRegex.FindString(s)
	if m == "" {
		return nil, fmt.Errorf("no version found in: %q", s)
	}
	return semver.NewVersion(m)
}
