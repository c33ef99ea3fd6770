package probe

import (
	"context"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// Kafka probes the message broker with a dial plus one protocol request.
type Kafka struct {
	cfg     config.KafkaConfig
	timeout time.Duration
}

// NewKafka creates the Kafka probe.
func NewKafka(cfg config.KafkaConfig, timeout time.Duration) *Kafka {
	return &Kafka{cfg: cfg, timeout: timeout}
}

// Name returns the display name.
func (p *Kafka) Name() string {
	return "Kafka"
}

// Probe dials the broker and asks for its API versions under a single
// connection deadline. A bare TCP accept is not enough to call a broker
// healthy; ApiVersions confirms something speaking the Kafka protocol is
// on the other end.
func (p *Kafka) Probe(ctx context.Context) domain.CheckResult {
	dialer := &kafka.Dialer{Timeout: p.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", p.cfg.Broker)
	if err != nil {
		if proberr.IsTimeout(err) {
			return domain.Unhealthy("connection timeout")
		}
		return domain.Unhealthy(proberr.Describe(err))
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(p.timeout)); err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}
	if _, err := conn.ApiVersions(); err != nil {
		if proberr.IsTimeout(err) {
			return domain.Unhealthy("connection timeout")
		}
		return domain.Unhealthy(proberr.Describe(err))
	}

	return domain.Healthy(fmt.Sprintf("connected (%s)", p.cfg.Broker))
}
