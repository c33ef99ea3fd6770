package probe

import (
	"context"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// Redis probes the cache store with a PING and reports the server version.
type Redis struct {
	cfg config.RedisConfig
}

// NewRedis creates the Redis probe.
func NewRedis(cfg config.RedisConfig) *Redis {
	return &Redis{cfg: cfg}
}

// Name returns the display name.
func (p *Redis) Name() string {
	return "Redis"
}

// Probe opens a short-lived client, pings, and pulls redis_version from
// INFO server when the server exposes it.
func (p *Redis) Probe(ctx context.Context) domain.CheckResult {
	client := goredis.NewClient(&goredis.Options{
		Addr:     p.cfg.Addr(),
		Password: p.cfg.Password,
		DB:       p.cfg.DB,
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}

	// INFO is best effort: some servers (and test doubles) restrict it.
	if info, err := client.Info(ctx, "server").Result(); err == nil {
		if v := redisVersion(info); v != "" {
			return domain.Healthy("v" + v)
		}
	}

	return domain.Healthy(fmt.Sprintf("connected (%s)", p.cfg.Addr()))
}

// redisVersion extracts redis_version from an INFO server section.
func redisVersion(info string) string {
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(line), "redis_version:"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
