package cache

import (
	"context"
	"courier-route-service/internal/domain"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisGeocodeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client, ttl), mr
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestRedisCache(t, 0)

	stored := map[string]domain.GeoPoint{
		"1 E Washington St, Phoenix": {Lat: 33.448, Lon: -112.073},
	}
	if err := cache.PutMany(ctx, stored); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := cache.GetMany(ctx, []string{"1 E Washington St, Phoenix", "unknown"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(got))
	}
	if p := got["1 E Washington St, Phoenix"]; p.Lat != 33.448 || p.Lon != -112.073 {
		t.Fatalf("unexpected point %+v", p)
	}
}

func TestRedisGeocodeCacheSetsTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, time.Hour)

	if err := cache.PutMany(ctx, map[string]domain.GeoPoint{"A St": {Lat: 1, Lon: 2}}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if ttl := mr.TTL(redisGeocodePrefix + "A St"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want %v", ttl, time.Hour)
	}
}

func TestRedisGeocodeCacheTreatsMalformedEntriesAsMisses(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedisCache(t, 0)

	if err := mr.Set(redisGeocodePrefix+"Bad St", "not-a-point"); err != nil {
		t.Fatalf("seed malformed entry: %v", err)
	}

	got, err := cache.GetMany(ctx, []string{"Bad St"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("malformed entry should be a miss, got %+v", got)
	}
}
