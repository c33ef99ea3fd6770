package ports

import (
	"context"

	"gcombinatr/internal/core/domain"
)

// Prober checks connectivity of one external dependency.
type Prober interface {
	// Probe attempts a single bounded liveness check. It never panics and
	// never returns an error; failures are folded into the result.
	Probe(ctx context.Context) domain.CheckResult
	// Name returns the display name (e.g., "Redis", "Neo4j").
	Name() string
}
