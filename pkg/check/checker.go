package check

// Checker is implemented by the checks behind the --info report.
//
// Implementations:
//   - venv.EnvironmentCheck: reports the located environment and its layout
//   - cmdcheck.Check: runs the environment's interpreter and checks its version
type Checker interface {
	Run() Result
}

// RunAll runs every checker in order and reports whether all passed.
func RunAll(checkers ...Checker) ([]Result, bool) {
	results := make([]Result, 0, len(checkers))
	ok := true
	for _, c := range checkers {
		r := c.Run()
		ok = ok && r.OK()
		results = append(results, r)
	}
	return results, ok
}
