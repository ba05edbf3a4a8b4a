// Package lease elects which replica runs a periodic job.
package lease

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultKey = "motoservice:assignment-sweep"

// RedisLease grants the job to whoever sets the key first. The key expires
// after ttl, so holding it needs no release and a crashed holder frees it.
type RedisLease struct {
	client redis.Cmdable
	key    string
	holder string
	ttl    time.Duration
}

func NewRedisLease(client redis.Cmdable, key string, ttl time.Duration) *RedisLease {
	return &RedisLease{
		client: client,
		key:    key,
		holder: uuid.NewString(),
		ttl:    ttl,
	}
}

// Acquire reports whether this replica holds the lease for the current period.
func (l *RedisLease) Acquire(ctx context.Context) (bool, error) {
	return l.client.SetNX(ctx, l.key, l.holder, l.ttl).Result()
}

// Local always grants the lease. Used when Redis is not configured or unreachable.
type Local struct{}

func (Local) Acquire(context.Context) (bool, error) {
	return true, nil
}
