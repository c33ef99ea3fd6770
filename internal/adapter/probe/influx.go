package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// Influx probes the time-series database over its HTTP API.
//
// This goes through net/http rather than the vendor client on purpose:
// the classification below needs the raw response status (401 vs anything
// else), which the client's ping helper does not expose.
type Influx struct {
	cfg    config.InfluxConfig
	client *http.Client
}

// NewInflux creates the InfluxDB probe.
func NewInflux(cfg config.InfluxConfig, timeout time.Duration) *Influx {
	return &Influx{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the display name.
func (p *Influx) Name() string {
	return "InfluxDB"
}

// Probe issues GET /ping with the configured bearer token.
func (p *Influx) Probe(ctx context.Context) domain.CheckResult {
	url := strings.TrimRight(p.cfg.URL, "/") + "/ping"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}
	req.Header.Set("Authorization", "Token "+p.cfg.Token)

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK:
		return domain.Healthy(fmt.Sprintf("connected (%s)", p.cfg.URL))
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.Unhealthy("authentication failed (check token)")
	default:
		return domain.Unhealthy(fmt.Sprintf("HTTP %d", resp.StatusCode))
	}
}
