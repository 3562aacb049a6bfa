package cli

import (
	"fmt"

	"refcheck/internal/verify"
)

// printRunSummary prints a formatted summary after the verdict lines.
func printRunSummary(res *verify.Result) {
	out.SummaryHeader("Verification Summary")

	out.SummaryPassed("Passed", fmt.Sprintf("%d", res.Passed))
	if res.Failed > 0 {
		out.SummaryFailed("Failed", fmt.Sprintf("%d", res.Failed))
	}
	out.SummaryItem("Total", fmt.Sprintf("%d", res.Total()))

	if res.Failed > 0 {
		out.Println("")
		out.SummarySectionLabel("Failed Cases:")
		for _, v := range res.Verdicts {
			if v.Passed {
				continue
			}
			detail := v.Detail
			if detail == "" {
				detail = "output mismatch"
			}
			out.SummaryFailed("  "+v.ID, detail)
		}
	}

	if res.Failed == 0 {
		out.FinalSuccess("All %d cases passed.", res.Total())
	} else {
		out.FinalFailure("%d of %d cases failed.", res.Failed, res.Total())
	}
}
