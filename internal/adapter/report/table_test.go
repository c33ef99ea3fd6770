package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcombinatr/internal/core/domain"
)

func sampleSummary(allOK bool) domain.RunSummary {
	return domain.RunSummary{
		AllRequiredOK: allOK,
		Reports: []domain.ProbeReport{
			{Name: "Redis", Required: true, Result: domain.Healthy("v7.2.0")},
			{Name: "Neo4j", Required: true, Result: domain.Unhealthy("connection refused")},
			{Name: "Kafka", Required: false, Result: domain.Unhealthy("connection timeout")},
		},
	}
}

func TestTablePreservesProbeOrder(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Table(sampleSummary(false))
	out := buf.String()

	redis := strings.Index(out, "Redis")
	neo4j := strings.Index(out, "Neo4j")
	kafka := strings.Index(out, "Kafka")

	require.NotEqual(t, -1, redis)
	require.NotEqual(t, -1, neo4j)
	require.NotEqual(t, -1, kafka)
	assert.Less(t, redis, neo4j)
	assert.Less(t, neo4j, kafka)
}

func TestTableShowsDetailsAndRequiredFlags(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Table(sampleSummary(false))
	out := buf.String()

	assert.Contains(t, out, "v7.2.0")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "connection timeout")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "No")
	assert.Contains(t, out, "Service Status")
}

func TestSummarySuccess(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Summary(sampleSummary(true))
	out := buf.String()

	assert.Contains(t, out, "All required services are running")
	assert.Contains(t, out, "ready to start the GCombinatr ecosystem")
	assert.NotContains(t, out, "INSTALL.md")
}

func TestSummaryFailurePointsAtSetupDocs(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf).Summary(sampleSummary(false))
	out := buf.String()

	assert.Contains(t, out, "Some required services are not running")
	assert.Contains(t, out, "INSTALL.md")
	assert.Contains(t, out, "./scripts/start-services.sh")
}

func TestEnvFileNotice(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.EnvFileNotice(true, ".env")
	assert.Contains(t, buf.String(), ".env file found")

	buf.Reset()
	r.EnvFileNotice(false, ".env")
	out := buf.String()
	assert.Contains(t, out, ".env file not found")
	assert.Contains(t, out, "cp .env.example .env")
}
