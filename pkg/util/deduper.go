package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper suppresses duplicate event processing across consumer redeliveries
// using a Redis SetNX lock per handler + entity ID.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce returns true when this is the first time the (handler, id) pair
// is processed within the TTL window. When Redis is unavailable it fails open
// and allows processing; downstream delivery must tolerate an occasional
// duplicate rather than lose an event.
func (d *Deduper) AcquireOnce(ctx context.Context, handler string, id int) bool {
	key := fmt.Sprintf("dedup:%s:%d", handler, id)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing processing",
				zap.String("handler", handler),
				zap.Int("id", id),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Skipped duplicated event",
			zap.String("handler", handler),
			zap.Int("id", id),
			zap.String("dedup_key", key),
		)
	}

	return ok
}
