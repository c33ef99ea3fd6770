package probe

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// Neo4j probes the graph database over the bolt protocol.
type Neo4j struct {
	cfg config.Neo4jConfig
}

// NewNeo4j creates the Neo4j probe.
func NewNeo4j(cfg config.Neo4jConfig) *Neo4j {
	return &Neo4j{cfg: cfg}
}

// Name returns the display name.
func (p *Neo4j) Name() string {
	return "Neo4j"
}

// Probe builds a driver with the configured credentials and verifies
// connectivity. Credential rejections are called out explicitly so the
// operator knows to fix auth rather than networking.
func (p *Neo4j) Probe(ctx context.Context) domain.CheckResult {
	driver, err := neo4j.NewDriverWithContext(
		p.cfg.URI,
		neo4j.BasicAuth(p.cfg.Username, p.cfg.Password, ""),
	)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		if proberr.IsAuth(err) {
			return domain.Unhealthy("authentication failed (check credentials)")
		}
		return domain.Unhealthy(proberr.Describe(err))
	}

	return domain.Healthy(fmt.Sprintf("connected (%s)", p.cfg.URI))
}
