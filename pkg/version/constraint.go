package version

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrConstraint is returned when a version does not satisfy a constraint.
var ErrConstraint = errors.New("version constraint not satisfied")

// ParseConstraint parses a constraint expression.
func ParseConstraint(expr string) (*semver.Constraints, error) {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", expr, err)
	}
	return c, nil
}

// Require checks v against expr and wraps ErrConstraint on mismatch.
func Require(v *semver.Version, expr string) error {
	c, err := ParseConstraint(expr)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %q", ErrConstraint, v, expr)
	}
	return nil
}
