// Package maps builds mapping-service links for decoded coordinates.
package maps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/metamap/internal/models"
	gmaps "googlemaps.github.io/maps"
)

// DefaultHost is the mapping service used when none is configured.
const DefaultHost = "www.google.com"

// ErrInvalidHost is returned when the configured host is not a bare host name.
var ErrInvalidHost = errors.New("maps host must be a bare host name")

// LinkBuilder formats query links of the form https://<host>/maps?q=<lat>,<lon>.
type LinkBuilder struct {
	host string
}

// NewLinkBuilder validates host and returns a LinkBuilder for it.
func NewLinkBuilder(host string) (*LinkBuilder, error) {
	if host == "" || strings.ContainsAny(host, "/?# ") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHost, host)
	}
	return &LinkBuilder{host: host}, nil
}

// Query renders the coordinates as "lat,lon" using the shortest
// representation that round-trips each float.
func Query(coords models.Coordinates) string {
	latLng := gmaps.LatLng{Lat: coords.Latitude, Lng: coords.Longitude}
	return latLng.String()
}

// Link returns the mapping-service URL for coords.
func (lb *LinkBuilder) Link(coords models.Coordinates) string {
	return fmt.Sprintf("https://%s/maps?q=%s", lb.host, Query(coords))
}
