package verify

import (
	"os"

	"refcheck/internal/output"
)

// Runner executes a full verification pass and reports through a Writer.
type Runner struct {
	Opts Options
	Out  *output.Writer
}

// Result aggregates the verdicts of one run.
type Result struct {
	Verdicts []Verdict
	Passed   int
	Failed   int
}

// Total returns the number of verdicts reached.
func (r *Result) Total() int {
	return len(r.Verdicts)
}

// Run discovers identifiers, prints the sorted list, then verifies each
// case in order, printing one verdict line per case. Verification is
// strictly sequential; a read failure aborts the remaining cases unless
// keep-going is set. The partial Result is returned alongside the error so
// callers can still summarize what completed.
func (r *Runner) Run() (*Result, error) {
	ids := Discover(r.Opts.ResultsDir)
	if len(ids) == 0 && r.Opts.Verbose {
		if _, err := os.Stat(r.Opts.ResultsDir); err != nil {
			r.Out.Hint("results directory %s is not readable; nothing to verify", r.Opts.ResultsDir)
		}
	}

	r.Out.Println("%s", FormatIDList(ids))

	res := &Result{}
	for _, id := range ids {
		v, err := Case(id, r.Opts)
		if err != nil {
			return res, err
		}
		res.Verdicts = append(res.Verdicts, v)
		if v.Passed {
			res.Passed++
		} else {
			res.Failed++
		}
		r.Out.Verdict(v.ID, v.Label())
		if v.Diff != "" {
			r.Out.Info("  %s", v.Diff)
		}
	}

	return res, nil
}
