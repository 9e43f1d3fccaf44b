package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "package_uploader"

var (
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Total number of package uploads sent to the object store",
		},
		[]string{"file_type", "result"},
	)

	UploadRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_rejections_total",
			Help:      "Total number of uploads rejected before reaching the object store",
		},
		[]string{"reason"},
	)

	UploadSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_size_bytes",
			Help:      "Size of uploaded packages in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024*1024, 2, 10),
		},
		[]string{"file_type"},
	)

	UploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Duration of object store puts in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"file_type"},
	)
)

// ObserveUpload records one finished put against the store.
func ObserveUpload(fileType string, size int, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}

	UploadsTotal.WithLabelValues(fileType, result).Inc()
	UploadDuration.WithLabelValues(fileType).Observe(elapsed.Seconds())
	if err == nil {
		UploadSizeBytes.WithLabelValues(fileType).Observe(float64(size))
	}
}

func ObserveRejection(reason string) {
	UploadRejectionsTotal.WithLabelValues(reason).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
