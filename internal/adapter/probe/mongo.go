package probe

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"gcombinatr/config"
	"gcombinatr/internal/core/domain"
	"gcombinatr/pkg/proberr"
)

// Mongo probes the document store and reports the server version.
type Mongo struct {
	cfg     config.MongoConfig
	timeout time.Duration
}

// NewMongo creates the MongoDB probe.
func NewMongo(cfg config.MongoConfig, timeout time.Duration) *Mongo {
	return &Mongo{cfg: cfg, timeout: timeout}
}

// Name returns the display name.
func (p *Mongo) Name() string {
	return "MongoDB"
}

// Probe connects, forces a ping against the primary, and asks buildInfo
// for the server version. Server selection is capped at the probe timeout
// so an unreachable host fails fast instead of hanging.
func (p *Mongo) Probe(ctx context.Context) domain.CheckResult {
	opts := options.Client().
		ApplyURI(p.cfg.URI).
		SetServerSelectionTimeout(p.timeout).
		SetConnectTimeout(p.timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}
	defer func() {
		// Disconnect under a fresh deadline; ctx may already be expired.
		dctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return domain.Unhealthy(proberr.Describe(err))
	}

	var info struct {
		Version string `bson:"version"`
	}
	cmd := bson.D{{Key: "buildInfo", Value: 1}}
	if err := client.Database("admin").RunCommand(ctx, cmd).Decode(&info); err == nil && info.Version != "" {
		return domain.Healthy("v" + info.Version)
	}

	return domain.Healthy(fmt.Sprintf("connected (%s)", p.cfg.URI))
}
