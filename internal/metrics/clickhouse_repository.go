package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tokenRepositoryOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_repository",
		Name:      "operations_total",
		Help:      "Count of token repository operations.",
	}, []string{"operation", "coin", "network", "status"})
	tokenRepositoryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of token repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "coin", "network", "status"})
	// Alerting on a stale insert_token_blocks timestamp catches a stuck indexer.
	tokenRepositoryLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_repository",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful token repository operation.",
	}, []string{"operation", "coin", "network"})
)

// ClickhouseRepository tracks metrics for ClickHouse token repository operations.
type ClickhouseRepository struct{}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records duration and status of a repository operation.
func (m ClickhouseRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	c, n := labelOrUnknown(string(coin)), labelOrUnknown(string(network))
	tokenRepositoryOperations.WithLabelValues(operation, c, n, status(err)).Inc()
	tokenRepositoryDuration.WithLabelValues(operation, c, n, status(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		tokenRepositoryLastSuccess.WithLabelValues(operation, c, n).SetToCurrentTime()
	}
}
