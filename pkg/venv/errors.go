package venv

import "fmt"

// InconsistencyError reports that the prefix marker did not end up pointing at
// the environment that was activated.
type InconsistencyError struct {
	Expected string
	Actual   string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("active environment doesn't match target: %s != %s", e.Expected, e.Actual)
}
