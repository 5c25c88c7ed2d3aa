package navigation

import (
	"courier-route-service/internal/domain"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const gmapsDirectionsURL = "https://www.google.com/maps/dir/"

// Builds Google Maps directions deep links from route segments.
//
// One link navigates from the segment origin through its waypoints to
// its destination, which is how a split tour is handed to a driver's
// phone one request at a time.
type GoogleMapsLinkBuilder struct{}

func NewGoogleMapsLinkBuilder() *GoogleMapsLinkBuilder {
	return &GoogleMapsLinkBuilder{}
}

// Return a directions link for the segment.
func (b *GoogleMapsLinkBuilder) BuildLink(segment domain.RouteSegment) (string, error) {
	if len(segment.Stops) == 0 {
		return "", errors.New("build link: segment has no stops")
	}

	params := url.Values{}
	params.Set("api", "1")
	params.Set("origin", formatPoint(segment.Origin))
	params.Set("destination", formatPoint(segment.Destination().Point))

	if waypoints := segment.Waypoints(); len(waypoints) > 0 {
		parts := make([]string, len(waypoints))
		for i, s := range waypoints {
			parts[i] = formatPoint(s.Point)
		}
		params.Set("waypoints", strings.Join(parts, "|"))
	}

	return gmapsDirectionsURL + "?" + params.Encode(), nil
}

// Six decimal places is roughly 0.1 m of precision.
func formatPoint(p domain.GeoPoint) string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}
