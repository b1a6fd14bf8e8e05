package report

import (
	"strconv"

	"github.com/UnknownOlympus/metamap/internal/console"
	"github.com/UnknownOlympus/metamap/internal/maps"
	"github.com/UnknownOlympus/metamap/internal/metadata"
)

// Reporter prints the final summary of a run.
type Reporter struct {
	printer *console.Printer
	links   *maps.LinkBuilder
}

// NewReporter creates a Reporter.
func NewReporter(printer *console.Printer, links *maps.LinkBuilder) *Reporter {
	return &Reporter{printer: printer, links: links}
}

// Report prints every coordinate group with its link, then the files
// without GPS data. A single notice replaces the listing when no file had
// coordinates.
func (r *Reporter) Report(agg *Aggregator) {
	groups := agg.Groups()
	if len(groups) == 0 {
		r.printer.Log(console.Warning, "No GPS data found in the provided files")
		return
	}

	for _, group := range groups {
		r.printer.Log(console.Success, "Found coordinates: Latitude: %s, Longitude: %s",
			formatDegrees(group.Coordinates.Latitude), formatDegrees(group.Coordinates.Longitude))
		r.printer.Log(console.Success, "Google maps: %s", r.links.Link(group.Coordinates))
		for _, file := range group.Files {
			r.printer.Item("- %s", file)
		}
	}

	if missing := agg.Missing(); len(missing) > 0 {
		r.printer.Log(console.Warning, "Files without GPS data:")
		for _, file := range missing {
			r.printer.Item("- %s", file)
		}
	}
}

// Dump prints every readable metadata tag of a single file.
func (r *Reporter) Dump(path string, tags []metadata.Tag) {
	r.printer.Log(console.Info, "Full metadata for %s:", path)
	for _, tag := range tags {
		if tag.Unreadable {
			continue
		}
		r.printer.Item("%s: %s", tag.Name, tag.Value)
	}
}

func formatDegrees(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
