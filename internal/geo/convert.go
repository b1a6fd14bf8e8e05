// Package geo converts EXIF GPS fields into decimal coordinates.
package geo

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/metamap/internal/metadata"
	"github.com/UnknownOlympus/metamap/internal/models"
)

const (
	minutesPerDegree = 60
	secondsPerDegree = 3600
)

// ToDecimal converts a degrees/minutes/seconds triple to signed decimal
// degrees. South and west references yield negative values. Component
// ranges are not validated.
func ToDecimal(triple models.Triple, ref models.Hemisphere) float64 {
	decimal := triple.Degrees + triple.Minutes/minutesPerDegree + triple.Seconds/secondsPerDegree
	if ref.Negative() {
		decimal = -decimal
	}
	return decimal
}

// Extractor builds coordinate pairs from GPS metadata fields.
type Extractor struct {
	log *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract returns the decimal coordinates described by fields. It reports
// false when any of the four fields is absent or malformed.
func (e *Extractor) Extract(ctx context.Context, fields metadata.GPSFields) (*models.Coordinates, bool) {
	statuses := []struct {
		name   string
		status metadata.Status
	}{
		{"GPSLatitude", fields.Latitude.Status},
		{"GPSLatitudeRef", fields.LatitudeRef.Status},
		{"GPSLongitude", fields.Longitude.Status},
		{"GPSLongitudeRef", fields.LongitudeRef.Status},
	}
	for _, field := range statuses {
		if field.status != metadata.Present {
			e.log.DebugContext(ctx, "GPS field not usable", "field", field.name, "status", field.status.String())
		}
	}

	if !fields.Latitude.Ok() || !fields.LatitudeRef.Ok() || !fields.Longitude.Ok() || !fields.LongitudeRef.Ok() {
		return nil, false
	}

	return &models.Coordinates{
		Latitude:  ToDecimal(fields.Latitude.Value, fields.LatitudeRef.Value),
		Longitude: ToDecimal(fields.Longitude.Value, fields.LongitudeRef.Value),
	}, true
}
