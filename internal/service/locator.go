package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/metamap/internal/console"
	"github.com/UnknownOlympus/metamap/internal/geo"
	"github.com/UnknownOlympus/metamap/internal/metadata"
	"github.com/UnknownOlympus/metamap/internal/metrics"
	"github.com/UnknownOlympus/metamap/internal/models"
	"github.com/UnknownOlympus/metamap/internal/report"
)

// LocatorService runs the metadata pipeline over a list of image paths:
// read, extract coordinates, aggregate and report.
type LocatorService struct {
	log       *slog.Logger     // Logger for diagnostic output
	reader    *metadata.Reader // Reader decodes image metadata
	extractor *geo.Extractor   // Extractor converts GPS fields to decimal degrees
	printer   *console.Printer // Printer for per-file diagnostics
	reporter  *report.Reporter // Reporter prints groups and the full dump
	metrics   *metrics.Metrics // Metrics for the run
}

// NewLocatorService creates a new instance of LocatorService.
func NewLocatorService(
	log *slog.Logger,
	reader *metadata.Reader,
	extractor *geo.Extractor,
	printer *console.Printer,
	reporter *report.Reporter,
	metrics *metrics.Metrics,
) *LocatorService {
	return &LocatorService{
		log:       log,
		reader:    reader,
		extractor: extractor,
		printer:   printer,
		reporter:  reporter,
		metrics:   metrics,
	}
}

// Run processes paths one after another and prints the summary. Failures
// on individual files are reported and never stop the run. When full is
// set every tag of each decoded file is dumped as well; argument
// validation restricts that to a single path.
func (ls *LocatorService) Run(ctx context.Context, paths []string, full bool) *report.Aggregator {
	agg := report.NewAggregator()

	for _, path := range paths {
		result := ls.process(ctx, path, full)
		ls.metrics.FilesProcessed.WithLabelValues(string(result.Status)).Inc()
		agg.Add(result)
	}

	ls.metrics.CoordinateGroups.Set(float64(len(agg.Groups())))
	ls.reporter.Report(agg)

	return agg
}

func (ls *LocatorService) process(ctx context.Context, path string, full bool) models.FileResult {
	result := models.FileResult{Path: path}

	startTime := time.Now()
	handle, err := ls.reader.Read(ctx, path)
	ls.metrics.ReadSeconds.Observe(time.Since(startTime).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, metadata.ErrFileNotFound):
			result.Status = models.StatusMissing
			ls.printer.Log(console.Error, "%s: File does not exist", path)
		case errors.Is(err, metadata.ErrNoMetadata):
			result.Status = models.StatusNoMetadata
			ls.printer.Log(console.Warning, "%s: EXIF metadata not found", path)
		default:
			result.Status = models.StatusFailed
			ls.printer.Log(console.Error, "%s: Error processing image: %v", path, err)
		}
		ls.log.DebugContext(ctx, "Failed to read metadata", "path", path, "error", err)
		return result
	}

	if full {
		tags, err := handle.Tags(ctx)
		if err != nil {
			ls.printer.Log(console.Warning, "%s: Metadata listing incomplete: %v", path, err)
			ls.log.WarnContext(ctx, "Tag enumeration stopped early", "path", path, "error", err)
		}
		ls.reporter.Dump(path, tags)
	}

	coords, ok := ls.extractor.Extract(ctx, handle.GPS())
	if !ok {
		result.Status = models.StatusNoGPS
		ls.printer.Log(console.Warning, "%s: Coordinates not found", path)
		return result
	}

	result.Status = models.StatusLocated
	result.Coordinates = coords
	ls.log.DebugContext(ctx, "Coordinates extracted", "path", path,
		"latitude", coords.Latitude, "longitude", coords.Longitude)

	return result
}
