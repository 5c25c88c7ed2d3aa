package cache

import (
	"context"
	"courier-route-service/internal/domain"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix so geocode entries can share a database with other keys.
const redisGeocodePrefix = "geocode:"

const defaultGeocodeTTL = 30 * 24 * time.Hour

// Redis-backed geocode cache. Points are stored as "lat,lon" strings
// under prefixed address keys with a TTL; malformed entries are treated
// as misses so a bad write never poisons lookups.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = defaultGeocodeTTL
	}
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

// Fetch cached points for the given addresses with a single MGET.
func (r *RedisGeocodeCache) GetMany(ctx context.Context, addresses []string) (map[string]domain.GeoPoint, error) {
	if len(addresses) == 0 {
		return map[string]domain.GeoPoint{}, nil
	}

	keys := make([]string, len(addresses))
	for i, a := range addresses {
		keys[i] = redisGeocodePrefix + a
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: mget: %w", err)
	}

	out := make(map[string]domain.GeoPoint, len(addresses))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		point, err := decodeGeoPoint(raw)
		if err != nil {
			continue
		}
		out[addresses[i]] = point
	}

	return out, nil
}

// Store address -> point mappings with a pipelined batch of SETs.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.GeoPoint) error {
	if len(results) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for addr, point := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("put geocode cache: empty address key")
		}
		pipe.Set(ctx, redisGeocodePrefix+addr, encodeGeoPoint(point), r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put geocode cache: pipeline exec: %w", err)
	}
	return nil
}

func encodeGeoPoint(p domain.GeoPoint) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon, 'f', -1, 64)
}

func decodeGeoPoint(raw string) (domain.GeoPoint, error) {
	latRaw, lonRaw, ok := strings.Cut(raw, ",")
	if !ok {
		return domain.GeoPoint{}, fmt.Errorf("malformed cache entry %q", raw)
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("malformed latitude in %q: %w", raw, err)
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("malformed longitude in %q: %w", raw, err)
	}

	return domain.GeoPoint{Lat: lat, Lon: lon}, nil
}
