// Package cache is a Redis read-through layer over the read stores that change rarely:
// properties, their extras and the commission rule set.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hosteed/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "hosteed:"

// Connect accepts either a redis:// URL or a bare host:port.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, errs.Wrap(err, "parse redis url")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "ping redis")
	}
	return client, nil
}

func propertyKey(id string) string       { return keyPrefix + "property:" + id }
func propertyExtrasKey(id string) string { return keyPrefix + "property_extras:" + id }
func commissionRulesKey() string         { return keyPrefix + "commission_rules:all" }

// getOrLoad serves key from Redis, falling back to load on a miss. Redis failures degrade to load
// so the cache never turns into an outage.
func getOrLoad[R any](
	ctx context.Context,
	client redis.Cmdable,
	ttl time.Duration,
	key string,
	load func(ctx context.Context) (R, error),
) (R, error) {
	raw, err := client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rec R
		if jerr := json.Unmarshal(raw, &rec); jerr == nil {
			return rec, nil
		}
		slog.Warn("discarding undecodable cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.Warn("cache read failed", "key", key, "error", err.Error())
	}

	rec, err := load(ctx)
	if err != nil {
		return rec, err
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return rec, nil
	}
	if err := client.Set(ctx, key, body, ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err.Error())
	}
	return rec, nil
}
