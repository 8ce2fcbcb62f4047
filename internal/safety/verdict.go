// internal/safety/verdict.go
package safety

import "strings"

// Verdict is a per-item safety judgment. The three values are totally
// ordered by severity: Unsafe > Caution > Safe.
type Verdict string

const (
	Safe    Verdict = "SAFE"
	Caution Verdict = "CAUTION"
	Unsafe  Verdict = "UNSAFE"
)

var severity = map[Verdict]int{
	Safe:    0,
	Caution: 1,
	Unsafe:  2,
}

// ParseVerdict validates a backend-supplied status string against the
// enumeration. Matching is case-insensitive and ignores surrounding
// whitespace; anything else is rejected rather than coerced.
func ParseVerdict(s string) (Verdict, bool) {
	v := Verdict(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := severity[v]; !ok {
		return "", false
	}
	return v, true
}

// Severity returns the rank of a verdict under the total order.
// Unknown values rank below Safe so they never win an aggregation.
func Severity(v Verdict) int {
	if rank, ok := severity[v]; ok {
		return rank
	}
	return -1
}

// Worst returns the maximum verdict under the severity order: Unsafe if
// any input is Unsafe, else Caution if any input is Caution, else Safe.
// Callers must not invoke it on an empty collection; emptiness is an
// IncompleteData condition handled before aggregation.
func Worst(verdicts []Verdict) Verdict {
	worst := Safe
	for _, v := range verdicts {
		if Severity(v) > Severity(worst) {
			worst = v
		}
	}
	return worst
}
