package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// maxModelNames caps how many pulled models the detail column lists.
const maxModelNames = 3

// Ollama probes the local inference server's models endpoint.
type Ollama struct {
	cfg    config.OllamaConfig
	client *http.Client
}

// NewOllama creates the Ollama probe.
func NewOllama(cfg config.OllamaConfig, timeout time.Duration) *Ollama {
	return &Ollama{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Name returns the display name.
func (p *Ollama) Name() string {
	return "Ollama"
}

// Probe lists installed models via GET /api/tags.
func (p *Ollama) Probe(ctx context.Context) domain.CheckResult {
	url := strings.TrimRight(p.cfg.URL, "/") + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Unhealthy(fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}

	var names []string
	for _, m := range gjson.GetBytes(body, "models.#.name").Array() {
		if m.String() == "" {
			continue
		}
		names = append(names, m.String())
		if len(names) == maxModelNames {
			break
		}
	}
	if len(names) == 0 {
		return domain.Healthy("connected (no models pulled)")
	}
	return domain.Healthy("models: " + strings.Join(names, ", "))
}
