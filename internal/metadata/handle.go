package metadata

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// Handle gives typed access to the metadata decoded from one file.
type Handle struct {
	exif *exif.Exif
}

// GPS reads the latitude and longitude fields with their references.
func (h *Handle) GPS() GPSFields {
	return readGPS(h.exif)
}

// Tag is one enumerated metadata field.
type Tag struct {
	Name       string
	Value      string
	Unreadable bool // Unreadable is set when the value could not be rendered.
}

type tagCollector struct {
	ctx  context.Context
	tags []Tag
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	value, ok := renderTag(tag)
	c.tags = append(c.tags, Tag{Name: string(name), Value: value, Unreadable: !ok})
	return nil
}

// Tags enumerates every decoded field, sorted by name. When the walk stops
// early the tags collected so far are returned along with the error.
func (h *Handle) Tags(ctx context.Context) ([]Tag, error) {
	collector := &tagCollector{ctx: ctx}
	err := h.exif.Walk(collector)

	sort.SliceStable(collector.tags, func(i, j int) bool {
		return collector.tags[i].Name < collector.tags[j].Name
	})

	if err != nil {
		return collector.tags, fmt.Errorf("failed to enumerate tags: %w", err)
	}

	return collector.tags, nil
}

func renderTag(tag *tiff.Tag) (string, bool) {
	if tag == nil {
		return "", false
	}

	count := int(tag.Count)
	parts := make([]string, 0, count)

	switch tag.Format() {
	case tiff.StringVal:
		value, err := tag.StringVal()
		if err != nil {
			return "", false
		}
		return value, true
	case tiff.IntVal:
		for i := 0; i < count; i++ {
			value, err := tag.Int64(i)
			if err != nil {
				return "", false
			}
			parts = append(parts, strconv.FormatInt(value, 10))
		}
	case tiff.FloatVal:
		for i := 0; i < count; i++ {
			value, err := tag.Float(i)
			if err != nil {
				return "", false
			}
			parts = append(parts, strconv.FormatFloat(value, 'f', -1, 64))
		}
	case tiff.RatVal:
		for i := 0; i < count; i++ {
			num, den, err := tag.Rat2(i)
			if err != nil || den == 0 {
				return "", false
			}
			parts = append(parts, strconv.FormatInt(num, 10)+"/"+strconv.FormatInt(den, 10))
		}
	default:
		return tag.String(), true
	}

	return strings.Join(parts, ", "), true
}
