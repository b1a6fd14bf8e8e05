package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// JobName is the Pushgateway job label for a metamap run.
const JobName = "metamap"

type Metrics struct {
	FilesProcessed   *prometheus.CounterVec
	CoordinateGroups prometheus.Gauge
	ReadSeconds      prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		FilesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "metamap_files_processed_total",
			Help: "Total number of processed image files by outcome.",
		}, []string{"status"}),
		CoordinateGroups: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "metamap_coordinate_groups",
			Help: "Number of distinct coordinate pairs found in the last run.",
		}),
		ReadSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "metamap_metadata_read_duration_seconds",
			Help:    "Duration of opening and decoding the metadata of one file.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Push sends everything gathered by gatherer to the Pushgateway at url,
// replacing the previous metrics of the job.
func Push(ctx context.Context, url string, gatherer prometheus.Gatherer, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := push.New(url, JobName).Gatherer(gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}
