package batch

import (
	"fmt"
	"strings"
)

// Policy decides what happens when an input line cannot be converted.
type Policy string

const (
	// PolicyAbort stops at the first bad line and fails the run.
	PolicyAbort Policy = "abort"

	// PolicySkip logs the bad line and carries on; the run succeeds.
	PolicySkip Policy = "skip"

	// PolicyReport writes an "error: ..." line in place of the result so
	// output stays aligned with input, and fails the run at the end.
	PolicyReport Policy = "report"
)

// Policies lists every accepted policy, default first.
var Policies = []Policy{PolicyAbort, PolicySkip, PolicyReport}

// ParsePolicy parses a policy name, ignoring case and surrounding space.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Policies {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown on-error policy %q (expected abort, skip or report)", s)
}
