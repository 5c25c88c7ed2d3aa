package geocode

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/metrics"
	"courier-route-service/internal/platform/obs"
	"courier-route-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSGeocoder implements Geocoder using the OpenRouteService geocode
// search endpoint.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - External API calls with retry/backoff
//
// The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	country string
	cache   ports.GeocodeCache
}

func NewORSGeocoder(apiKey string, cache ports.GeocodeCache) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		country: "US",
		cache:   cache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *ORSGeocoder) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Delegate to the batched path to reuse caching logic.
func (g *ORSGeocoder) Resolve(ctx context.Context, address string) (domain.GeoPoint, error) {
	norm := g.normalize(address)
	if norm == "" {
		return domain.GeoPoint{}, errors.New("resolve address: address must be non-empty")
	}

	results, err := g.ResolveMany(ctx, []string{address})
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("resolve %q: %w", norm, err)
	}

	point, ok := results[address]
	if !ok {
		return domain.GeoPoint{}, fmt.Errorf("resolve %q: no result", norm)
	}
	return point, nil
}

// Resolve many addresses at once, consulting the persistent cache
// before issuing external API calls. Results are keyed by the address
// as given.
func (g *ORSGeocoder) ResolveMany(ctx context.Context, addresses []string) (_ map[string]domain.GeoPoint, err error) {
	defer obs.Time(ctx, "ors.ResolveMany")(&err)

	seen := make(map[string]struct{}, len(addresses))
	needed := make([]string, 0, len(addresses))
	for _, a := range addresses {
		norm := g.normalize(a)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		needed = append(needed, norm)
	}

	if len(needed) == 0 {
		return map[string]domain.GeoPoint{}, nil
	}

	hits := make(map[string]domain.GeoPoint)
	// Check the persistent geocode cache before calling ORS.
	if g.cache != nil {
		hits, err = g.cache.GetMany(ctx, needed)
		if err != nil {
			return nil, fmt.Errorf("geocode cache read: %w", err)
		}
	}

	misses := make([]string, 0, len(needed))
	for _, a := range needed {
		if _, ok := hits[a]; !ok {
			misses = append(misses, a)
		}
	}

	metrics.GeocodeCacheHits.Add(float64(len(hits)))
	metrics.GeocodeCacheMisses.Add(float64(len(misses)))

	fresh := make(map[string]domain.GeoPoint)
	if len(misses) > 0 {
		fresh, err = g.fetchMany(ctx, misses)
		if err != nil {
			return nil, err
		}
	}

	if g.cache != nil && len(fresh) > 0 {
		if err := g.cache.PutMany(ctx, fresh); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	out := make(map[string]domain.GeoPoint, len(addresses))
	for _, a := range addresses {
		norm := g.normalize(a)
		if point, ok := hits[norm]; ok {
			out[a] = point
			continue
		}
		if point, ok := fresh[norm]; ok {
			out[a] = point
		}
	}

	return out, nil
}

type fetchResult struct {
	address string
	point   domain.GeoPoint
	err     error
}

// Fetch uncached addresses concurrently, bounded to five in-flight
// requests. The first failure cancels the remaining lookups.
func (g *ORSGeocoder) fetchMany(ctx context.Context, addresses []string) (map[string]domain.GeoPoint, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 5)
	resultsCh := make(chan fetchResult, len(addresses))
	var wg sync.WaitGroup

	for _, address := range addresses {
		wg.Add(1)
		go func(addr string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			point, err := g.fetchOne(ctx, addr)
			if err != nil {
				resultsCh <- fetchResult{address: addr, err: err}
				cancel()
				return
			}
			resultsCh <- fetchResult{address: addr, point: point}
		}(address)
	}

	wg.Wait()
	close(resultsCh)

	out := make(map[string]domain.GeoPoint, len(addresses))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		out[res.address] = res.point
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

func (g *ORSGeocoder) fetchOne(ctx context.Context, address string) (domain.GeoPoint, error) {
	endpoint := g.baseURL + "/geocode/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		q.Set("boundary.country", g.country)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("decode geocode response for %q: %w", address, err)
	}

	if len(decoded.Features) == 0 {
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: %w", address, ports.ErrAddressNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: invalid coordinate format", address)
	}

	// GeoJSON orders coordinates lon, lat.
	point, err := domain.NewGeoPoint(coords[1], coords[0])
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	return point, nil
}
