package cli

import (
	"strings"
	"testing"

	"refcheck/internal/verify"
)

func TestPrintRunSummary_AllPassed(t *testing.T) {
	stdout, _ := captureOutput(t)

	res := &verify.Result{
		Verdicts: []verify.Verdict{
			{ID: "a", Passed: true},
			{ID: "b", Passed: true},
		},
		Passed: 2,
	}
	printRunSummary(res)

	got := stdout.String()
	for _, want := range []string{
		"=== Verification Summary ===",
		"Passed: 2",
		"Total: 2",
		"All 2 cases passed.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Failed:") {
		t.Errorf("summary shows Failed line with no failures:\n%s", got)
	}
}

func TestPrintRunSummary_WithFailures(t *testing.T) {
	stdout, _ := captureOutput(t)

	res := &verify.Result{
		Verdicts: []verify.Verdict{
			{ID: "a", Passed: true},
			{ID: "b"},
			{ID: "c", Detail: "missing output"},
		},
		Passed: 1,
		Failed: 2,
	}
	printRunSummary(res)

	got := stdout.String()
	for _, want := range []string{
		"Passed: 1",
		"Failed: 2",
		"Total: 3",
		"Failed Cases:",
		"b",
		"c: missing output",
		"2 of 3 cases failed.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
