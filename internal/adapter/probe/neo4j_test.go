package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcombinatr/config"
)

func TestNeo4jProbeServerDown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	p := NewNeo4j(config.Neo4jConfig{
		URI:      "neo4j://" + addr,
		Username: "neo4j",
		Password: "password",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res := p.Probe(ctx)

	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Detail)
}

func TestNeo4jProbeInvalidURI(t *testing.T) {
	p := NewNeo4j(config.Neo4jConfig{
		URI:      "ftp://localhost:7687",
		Username: "neo4j",
		Password: "password",
	})

	res := p.Probe(context.Background())

	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Detail)
}
