package domain

// Verdict is the overall outcome of one evaluation run.
type Verdict string

const (
	VerdictUnsolved  Verdict = "unsolved"
	VerdictAttempted Verdict = "attempted"
	VerdictSolved    Verdict = "solved"
)

// Valid reports whether v is a known verdict.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictUnsolved, VerdictAttempted, VerdictSolved:
		return true
	}
	return false
}

// Aggregate folds per-case results into a verdict. An empty run is never solved.
func Aggregate(results []TestCaseResult) Verdict {
	if len(results) == 0 {
		return VerdictUnsolved
	}
	passed := 0
	for _, r := range results {
		if r.Passed {
			passed++
		}
	}
	switch {
	case passed == len(results):
		return VerdictSolved
	case passed > 0:
		return VerdictAttempted
	default:
		return VerdictUnsolved
	}
}
