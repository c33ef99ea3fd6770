package domain

import "context"

// CheckResult is the outcome of a single connectivity probe.
type CheckResult struct {
	OK     bool
	Detail string // version string, endpoint description, or error message
}

// Healthy builds a passing result.
func Healthy(detail string) CheckResult {
	return CheckResult{OK: true, Detail: detail}
}

// Unhealthy builds a failing result.
func Unhealthy(detail string) CheckResult {
	return CheckResult{OK: false, Detail: detail}
}

// ProbeFunc attempts one bounded connectivity check. Implementations must
// release any client they open before returning, on all paths.
type ProbeFunc func(ctx context.Context) CheckResult

// ServiceCheck is a named probe in the fixed verification list.
// A nil Probe means the client capability is not available in this build.
type ServiceCheck struct {
	Name     string
	Required bool
	Probe    ProbeFunc
}

// ProbeReport pairs a check with its result for rendering.
type ProbeReport struct {
	Name     string
	Required bool
	Result   CheckResult
}

// RunSummary aggregates one verification run.
type RunSummary struct {
	Reports       []ProbeReport
	AllRequiredOK bool
}

// ExitCode maps the summary to a process exit code.
func (s RunSummary) ExitCode() int {
	if s.AllRequiredOK {
		return 0
	}
	return 1
}
