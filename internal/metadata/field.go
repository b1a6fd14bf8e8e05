package metadata

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/metamap/internal/models"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// Status is the outcome of reading a single named field.
type Status int

// Field statuses.
const (
	Absent Status = iota
	Present
	Malformed
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Malformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Field is the typed result of reading one metadata field.
type Field[T any] struct {
	Value  T
	Status Status
	Err    error // Err is set when Status is Malformed.
}

// Ok reports whether the field holds a usable value.
func (f Field[T]) Ok() bool {
	return f.Status == Present
}

func present[T any](value T) Field[T] {
	return Field[T]{Value: value, Status: Present}
}

func malformed[T any](err error) Field[T] {
	return Field[T]{Status: Malformed, Err: err}
}

// Errors describing malformed GPS fields.
var (
	ErrShortTriple      = errors.New("coordinate has fewer than three values")
	ErrZeroDenominator  = errors.New("rational value has zero denominator")
	ErrUnexpectedFormat = errors.New("unexpected tag format")
)

// GPSFields holds the four fields needed to build a coordinate pair.
type GPSFields struct {
	Latitude     Field[models.Triple]
	LatitudeRef  Field[models.Hemisphere]
	Longitude    Field[models.Triple]
	LongitudeRef Field[models.Hemisphere]
}

// tagGetter is the subset of *exif.Exif used to look up named tags.
type tagGetter interface {
	Get(name exif.FieldName) (*tiff.Tag, error)
}

func isNotPresent(err error) bool {
	var notPresent exif.TagNotPresentError
	return errors.As(err, &notPresent)
}

func readTriple(src tagGetter, name exif.FieldName) Field[models.Triple] {
	tag, err := src.Get(name)
	if err != nil {
		if isNotPresent(err) {
			return Field[models.Triple]{Status: Absent}
		}
		return malformed[models.Triple](err)
	}

	if tag.Format() != tiff.RatVal {
		return malformed[models.Triple](fmt.Errorf("%w: %s", ErrUnexpectedFormat, name))
	}
	const parts = 3
	if tag.Count < parts {
		return malformed[models.Triple](fmt.Errorf("%w: %s has %d", ErrShortTriple, name, tag.Count))
	}

	var values [parts]float64
	for i := range values {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return malformed[models.Triple](err)
		}
		if den == 0 {
			return malformed[models.Triple](fmt.Errorf("%w: %s[%d]", ErrZeroDenominator, name, i))
		}
		values[i] = float64(num) / float64(den)
	}

	return present(models.Triple{Degrees: values[0], Minutes: values[1], Seconds: values[2]})
}

func readHemisphere(src tagGetter, name exif.FieldName) Field[models.Hemisphere] {
	tag, err := src.Get(name)
	if err != nil {
		if isNotPresent(err) {
			return Field[models.Hemisphere]{Status: Absent}
		}
		return malformed[models.Hemisphere](err)
	}

	value, err := tag.StringVal()
	if err != nil {
		return malformed[models.Hemisphere](err)
	}

	ref, err := models.ParseHemisphere(value)
	if err != nil {
		return malformed[models.Hemisphere](err)
	}

	return present(ref)
}

func readGPS(src tagGetter) GPSFields {
	return GPSFields{
		Latitude:     readTriple(src, exif.GPSLatitude),
		LatitudeRef:  readHemisphere(src, exif.GPSLatitudeRef),
		Longitude:    readTriple(src, exif.GPSLongitude),
		LongitudeRef: readHemisphere(src, exif.GPSLongitudeRef),
	}
}
