package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// Verifier runs a fixed ordered list of service checks, one at a time,
// and aggregates the required-services verdict. Probes are fully
// isolated: a failing, panicking or hanging probe never prevents the
// remaining probes from running.
type Verifier struct {
	checks  []domain.ServiceCheck
	timeout time.Duration
	log     zerolog.Logger
}

// NewVerifier creates a verifier over the given checks. timeout bounds
// each individual probe.
func NewVerifier(checks []domain.ServiceCheck, timeout time.Duration, log zerolog.Logger) *Verifier {
	return &Verifier{
		checks:  checks,
		timeout: timeout,
		log:     log,
	}
}

// Run executes every check in declaration order and returns the summary.
// There are no retries: each probe attempts exactly once per run.
func (v *Verifier) Run(ctx context.Context) domain.RunSummary {
	runID := uuid.NewString()
	log := v.log.With().Str("run_id", runID).Logger()
	log.Info().Int("checks", len(v.checks)).Msg("starting service verification")

	summary := domain.RunSummary{AllRequiredOK: true}

	for _, check := range v.checks {
		start := time.Now()
		result := v.runProbe(ctx, check)

		log.Debug().
			Str("service", check.Name).
			Bool("ok", result.OK).
			Bool("required", check.Required).
			Str("detail", result.Detail).
			Dur("elapsed", time.Since(start)).
			Msg("probe finished")

		if check.Required && !result.OK {
			summary.AllRequiredOK = false
		}
		summary.Reports = append(summary.Reports, domain.ProbeReport{
			Name:     check.Name,
			Required: check.Required,
			Result:   result,
		})
	}

	log.Info().Bool("all_required_ok", summary.AllRequiredOK).Msg("service verification finished")
	return summary
}

// runProbe is the containment boundary: whatever the probe does, the
// caller gets a plain CheckResult back.
func (v *Verifier) runProbe(ctx context.Context, check domain.ServiceCheck) (result domain.CheckResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.Unhealthy(fmt.Sprintf("probe failure: %v", r))
		}
	}()

	if check.Probe == nil {
		return domain.Unhealthy(proberr.MissingCapability(check.Name).Message)
	}

	pctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	return check.Probe(pctx)
}
