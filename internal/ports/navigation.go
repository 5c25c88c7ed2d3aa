package ports

import "courier-route-service/internal/domain"

// Port: a boundary for producing shareable navigation links from route
// segments.
type NavigationLinkBuilder interface {
	// Return a deep link that navigates the segment start to finish.
	BuildLink(segment domain.RouteSegment) (string, error)
}
