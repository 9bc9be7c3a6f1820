// Package doctor runs environment and configuration health checks for folio.
package doctor

import "context"

// Status represents the result status of a check item.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// CheckItem is a single line within a check result.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Result is the outcome of one check.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

// Check defines the interface for a doctor check.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// RunAll executes checks in order. A cancelled context stops the run
// and returns the results gathered so far.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		if ctx.Err() != nil {
			break
		}
		results = append(results, check.Run(ctx))
	}
	return results
}

// Summary returns counts of passed, warned, and failed items across all results.
func Summary(results []Result) (passed, warned, failed int) {
	for _, r := range results {
		for _, item := range r.Items {
			switch item.Status {
			case StatusPass:
				passed++
			case StatusWarn:
				warned++
			case StatusFail:
				failed++
			}
		}
	}
	return passed, warned, failed
}

func pass(label, detail string) CheckItem {
	return CheckItem{Label: label, Status: StatusPass, Detail: detail}
}

func warn(label, detail string) CheckItem {
	return CheckItem{Label: label, Status: StatusWarn, Detail: detail}
}

func fail(label, detail string) CheckItem {
	return CheckItem{Label: label, Status: StatusFail, Detail: detail}
}
