package probe

import (
	"context"
	"fmt"
	goversion "go/version"
	"runtime"
	"strings"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
)

// Runtime gates on the Go toolchain the binary was built with.
type Runtime struct {
	minVersion string
	// version is overridable for tests; defaults to runtime.Version().
	version func() string
}

// NewRuntime creates the runtime version check.
func NewRuntime(cfg config.RuntimeConfig) *Runtime {
	return &Runtime{
		minVersion: cfg.MinVersion,
		version:    runtime.Version,
	}
}

// Name returns the display name.
func (p *Runtime) Name() string {
	return "Go Runtime"
}

// Probe compares the build toolchain version against the configured minimum.
func (p *Runtime) Probe(_ context.Context) domain.CheckResult {
	current := p.version()

	// Development builds (devel gomote etc.) carry no comparable version.
	if !goversion.IsValid(goversion.Lang(current)) {
		return domain.Healthy(current)
	}

	if goversion.Compare(current, p.minVersion) < 0 {
		return domain.Unhealthy(fmt.Sprintf("%s (%s+ required)", display(current), display(p.minVersion)))
	}
	return domain.Healthy(display(current))
}

func display(v string) string {
	return strings.TrimPrefix(v, "go")
}
