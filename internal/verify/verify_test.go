package verify

import (
	"path/filepath"
	"strings"
	"testing"

	"refcheck/internal/errors"
)

// newOptions returns Options over two fresh temp directories.
func newOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		ResultsDir: t.TempDir(),
		OutputsDir: t.TempDir(),
		ResultExt:  ".result",
		OutputExt:  ".output",
	}
}

func TestCase_Succeeded(t *testing.T) {
	opts := newOptions(t)
	writeFile(t, filepath.Join(opts.ResultsDir, "a.result"), "X\n")
	writeFile(t, filepath.Join(opts.OutputsDir, "a.output"), "X\n")

	v, err := Case("a", opts)
	if err != nil {
		t.Fatalf("Case() error = %v", err)
	}
	if !v.Passed {
		t.Error("Case() verdict not passed for identical contents")
	}
	if got := v.Label(); got != "succeeded" {
		t.Errorf("Label() = %q, want %q", got, "succeeded")
	}
}

func TestCase_Failed(t *testing.T) {
	opts := newOptions(t)
	writeFile(t, filepath.Join(opts.ResultsDir, "b.result"), "Y\n")
	writeFile(t, filepath.Join(opts.OutputsDir, "b.output"), "Z\n")

	v, err := Case("b", opts)
	if err != nil {
		t.Fatalf("Case() error = %v", err)
	}
	if v.Passed {
		t.Error("Case() verdict passed for differing contents")
	}
	if got := v.Label(); got != "failed" {
		t.Errorf("Label() = %q, want %q", got, "failed")
	}
}

func TestCase_ByteExact(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     bool
	}{
		{"identical", "X\n", "X\n", true},
		{"trailing space", "X\n", "X \n", false},
		{"crlf vs lf", "X\n", "X\r\n", false},
		{"missing final newline", "X\n", "X", false},
		{"empty vs empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newOptions(t)
			writeFile(t, filepath.Join(opts.ResultsDir, "c.result"), tt.expected)
			writeFile(t, filepath.Join(opts.OutputsDir, "c.output"), tt.actual)

			v, err := Case("c", opts)
			if err != nil {
				t.Fatalf("Case() error = %v", err)
			}
			if v.Passed != tt.want {
				t.Errorf("Case() passed = %v, want %v", v.Passed, tt.want)
			}
		})
	}
}

func TestCase_MissingOutputIsFatal(t *testing.T) {
	opts := newOptions(t)
	writeFile(t, filepath.Join(opts.ResultsDir, "c.result"), "X\n")

	_, err := Case("c", opts)
	if err == nil {
		t.Fatal("Case() expected error for missing produced artifact")
	}

	ce, ok := err.(*errors.CheckError)
	if !ok {
		t.Fatalf("Case() error type = %T, want *errors.CheckError", err)
	}
	if ce.Case != "c" {
		t.Errorf("error Case = %q, want %q", ce.Case, "c")
	}
	if errors.GetExitCode(err) != errors.ExitRuntimeError {
		t.Errorf("GetExitCode() = %d, want %d", errors.GetExitCode(err), errors.ExitRuntimeError)
	}
}

func TestCase_MissingOutputKeepGoing(t *testing.T) {
	opts := newOptions(t)
	opts.KeepGoing = true
	writeFile(t, filepath.Join(opts.ResultsDir, "c.result"), "X\n")

	v, err := Case("c", opts)
	if err != nil {
		t.Fatalf("Case() error = %v", err)
	}
	if v.Passed {
		t.Error("Case() verdict passed for missing produced artifact")
	}
	if got := v.Label(); got != "failed (missing output)" {
		t.Errorf("Label() = %q, want %q", got, "failed (missing output)")
	}
}

func TestCase_MissingReferenceAlwaysFatal(t *testing.T) {
	opts := newOptions(t)
	opts.KeepGoing = true
	// Only the produced artifact exists; the reference is absent. This
	// happens for identifiers discovered in subdirectories of the results
	// tree, since pairing always resolves against the directory root.
	writeFile(t, filepath.Join(opts.OutputsDir, "d.output"), "X\n")

	_, err := Case("d", opts)
	if err == nil {
		t.Fatal("Case() expected error for missing reference artifact")
	}
	if !strings.Contains(err.Error(), "reference artifact") {
		t.Errorf("error = %q, want mention of reference artifact", err.Error())
	}
}

func TestCase_VerboseDiff(t *testing.T) {
	opts := newOptions(t)
	opts.Verbose = true
	writeFile(t, filepath.Join(opts.ResultsDir, "e.result"), "one\ntwo\n")
	writeFile(t, filepath.Join(opts.OutputsDir, "e.output"), "one\ntWo\n")

	v, err := Case("e", opts)
	if err != nil {
		t.Fatalf("Case() error = %v", err)
	}
	if v.Passed {
		t.Fatal("Case() verdict passed for differing contents")
	}
	if !strings.Contains(v.Diff, "line 2") {
		t.Errorf("Diff = %q, want first-difference location on line 2", v.Diff)
	}
}

func TestCase_CustomExtensions(t *testing.T) {
	opts := newOptions(t)
	opts.ResultExt = ".expected"
	opts.OutputExt = ".actual"
	writeFile(t, filepath.Join(opts.ResultsDir, "f.expected"), "X\n")
	writeFile(t, filepath.Join(opts.OutputsDir, "f.actual"), "X\n")

	v, err := Case("f", opts)
	if err != nil {
		t.Fatalf("Case() error = %v", err)
	}
	if !v.Passed {
		t.Error("Case() verdict not passed with custom extensions")
	}
}

func TestVerdict_Label(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    string
	}{
		{"passed", Verdict{Passed: true}, "succeeded"},
		{"failed", Verdict{}, "failed"},
		{"failed with detail", Verdict{Detail: "missing output"}, "failed (missing output)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verdict.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
