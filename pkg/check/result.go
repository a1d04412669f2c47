package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   `json:"name" yaml:"name"`       // e.g., "venv: /src/app/.venv", "python: 3.11.4"
	Status  Status   `json:"status" yaml:"status"`   // OK or FAIL
	Details []string `json:"details" yaml:"details"` // human-readable details
	Err     error    `json:"-" yaml:"-"`             // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
