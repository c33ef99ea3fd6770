package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gcombinatr/config"
)

func TestRuntimeProbeCurrentToolchain(t *testing.T) {
	p := NewRuntime(config.RuntimeConfig{MinVersion: "go1.22"})

	res := p.Probe(context.Background())

	assert.True(t, res.OK)
	assert.NotEmpty(t, res.Detail)
}

func TestRuntimeProbeTooOld(t *testing.T) {
	p := NewRuntime(config.RuntimeConfig{MinVersion: "go1.22"})
	p.version = func() string { return "go1.20.3" }

	res := p.Probe(context.Background())

	assert.False(t, res.OK)
	assert.Equal(t, "1.20.3 (1.22+ required)", res.Detail)
}

func TestRuntimeProbeExactMinimum(t *testing.T) {
	p := NewRuntime(config.RuntimeConfig{MinVersion: "go1.22"})
	p.version = func() string { return "go1.22" }

	res := p.Probe(context.Background())

	assert.True(t, res.OK)
	assert.Equal(t, "1.22", res.Detail)
}

func TestRuntimeProbeDevelBuild(t *testing.T) {
	p := NewRuntime(config.RuntimeConfig{MinVersion: "go1.22"})
	p.version = func() string { return "devel +abc123" }

	res := p.Probe(context.Background())

	// A devel toolchain has no comparable version; report it, don't fail.
	assert.True(t, res.OK)
	assert.Equal(t, "devel +abc123", res.Detail)
}
