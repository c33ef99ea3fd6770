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

func TestKafkaProbeSilentBroker(t *testing.T) {
	// Accepts TCP but never speaks the protocol; the probe must hit its
	// deadline and report a timeout, not hang.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	p := NewKafka(config.KafkaConfig{Broker: l.Addr().String()}, 200*time.Millisecond)
	res := p.Probe(context.Background())

	assert.False(t, res.OK)
	assert.Equal(t, "connection timeout", res.Detail)

	l.Close()
	<-done
}

func TestKafkaProbeBrokerDown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	p := NewKafka(config.KafkaConfig{Broker: addr}, 200*time.Millisecond)
	res := p.Probe(context.Background())

	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Detail)
}
