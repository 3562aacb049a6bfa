package verify

import (
	"fmt"
	"os"
	"path/filepath"

	"refcheck/internal/errors"
	"refcheck/pkg/textcompare"
)

// Options configures a verification run. All fields must be populated;
// internal/config supplies the defaults.
type Options struct {
	ResultsDir string
	OutputsDir string
	ResultExt  string
	OutputExt  string

	// KeepGoing turns an unreadable produced artifact into a failed verdict
	// instead of aborting the rest of the run.
	KeepGoing bool

	// Verbose attaches a first-difference description to failed verdicts.
	Verbose bool
}

// Verdict is the outcome of comparing one test case.
type Verdict struct {
	ID     string
	Passed bool
	Detail string // non-empty qualifier for failed verdicts, e.g. "missing output"
	Diff   string // first-difference description, only set in verbose mode
}

// Label returns the report label for the verdict line.
func (v Verdict) Label() string {
	if v.Passed {
		return "succeeded"
	}
	if v.Detail != "" {
		return "failed (" + v.Detail + ")"
	}
	return "failed"
}

// Case compares one identifier's reference and produced artifacts.
//
// The reference is read from <results>/<id><resultExt> and the produced
// output from <outputs>/<id><outputExt>, always at the directory roots:
// identifiers discovered deeper in the results tree are still resolved
// against the root, so a nested-only reference file fails here.
func Case(id string, opts Options) (Verdict, error) {
	refPath := filepath.Join(opts.ResultsDir, id+opts.ResultExt)
	outPath := filepath.Join(opts.OutputsDir, id+opts.OutputExt)

	expected, err := os.ReadFile(refPath)
	if err != nil {
		return Verdict{}, errors.CaseError(id, fmt.Sprintf("cannot read reference artifact %s", refPath), err)
	}

	actual, err := os.ReadFile(outPath)
	if err != nil {
		if opts.KeepGoing {
			detail := "unreadable output"
			if os.IsNotExist(err) {
				detail = "missing output"
			}
			return Verdict{ID: id, Detail: detail}, nil
		}
		return Verdict{}, errors.CaseError(id, fmt.Sprintf("cannot read produced artifact %s", outPath), err)
	}

	if textcompare.Equal(expected, actual) {
		return Verdict{ID: id, Passed: true}, nil
	}

	v := Verdict{ID: id}
	if opts.Verbose {
		v.Diff = textcompare.FirstDiff(string(expected), string(actual))
	}
	return v, nil
}
